package engine

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrNilAction     = errors.New("动作为空")
	ErrNoLegalTarget = errors.New("没有可被影响的目标")
)

// Handler 打断/响应窗口里的回调
type Handler func(event *GameEvent)

// Context 本次结算的发起者，以及是否作为费用支付
type Context struct {
	Player string
	AsCost bool
}

// Result 一次结算的结果
type Result struct {
	Action    string       `json:"action"`
	Message   string       `json:"message"`
	Resolved  []*GameEvent `json:"resolved"`
	Cancelled []*GameEvent `json:"cancelled"`
}

// Engine 单线程同步结算动作：选目标 -> 打断窗口 -> 效果 -> 响应窗口
type Engine struct {
	logger  *zap.Logger
	metrics *Metrics

	mu         sync.RWMutex
	interrupts map[EventName][]Handler
	reactions  map[EventName][]Handler
}

func New(logger *zap.Logger, metrics *Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:     logger,
		metrics:    metrics,
		interrupts: make(map[EventName][]Handler),
		reactions:  make(map[EventName][]Handler),
	}
}

// OnInterrupt 注册在效果生效前执行的回调，可以取消事件
func (e *Engine) OnInterrupt(name EventName, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.interrupts[name] = append(e.interrupts[name], h)
}

// OnReaction 注册在效果生效后执行的回调
func (e *Engine) OnReaction(name EventName, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reactions[name] = append(e.reactions[name], h)
}

func (e *Engine) Resolve(action Action, ctx Context) (*Result, error) {
	if action == nil {
		return nil, ErrNilAction
	}

	var events []*GameEvent
	var legal []Target
	for _, target := range action.Targets() {
		if !action.CanAffect(target) {
			e.logger.Debug("目标不可被影响",
				zap.String("action", action.Name()),
				zap.String("target", target.String()))
			continue
		}
		legal = append(legal, target)
		events = append(events, newEvent(action.EventName(), ctx.Player, target.Card, target.Token, ctx.AsCost))
	}
	if len(events) == 0 {
		e.metrics.observeAction(action.Name(), "no_target")
		return nil, fmt.Errorf("%s: %w", action.Name(), ErrNoLegalTarget)
	}

	e.mu.RLock()
	interrupts := e.interrupts[action.EventName()]
	reactions := e.reactions[action.EventName()]
	e.mu.RUnlock()

	for _, ev := range events {
		for _, h := range interrupts {
			h(ev)
		}
	}

	result := &Result{Action: action.Name()}
	for _, ev := range events {
		if ev.Cancelled {
			result.Cancelled = append(result.Cancelled, ev)
			e.metrics.observeEvent(ev.Name, "cancelled")
			continue
		}
		action.Handle(ev)
		result.Resolved = append(result.Resolved, ev)
		e.metrics.observeEvent(ev.Name, "resolved")
	}

	for _, ev := range result.Resolved {
		for _, h := range reactions {
			h(ev)
		}
	}

	text := action.EffectText()
	if ctx.AsCost {
		text = action.CostText()
	}
	result.Message = fmt.Sprintf("%s: %s", ctx.Player, text)

	outcome := "resolved"
	if len(result.Resolved) == 0 {
		outcome = "cancelled"
	}
	e.metrics.observeAction(action.Name(), outcome)
	e.logger.Info("动作结算完成",
		zap.String("action", action.Name()),
		zap.String("player", ctx.Player),
		zap.Bool("asCost", ctx.AsCost),
		zap.Int("targets", len(legal)),
		zap.Int("resolved", len(result.Resolved)),
		zap.Int("cancelled", len(result.Cancelled)))
	return result, nil
}
