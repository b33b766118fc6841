package engine

// TrackPersonalHonorLoss 在响应窗口统计被弃置的个人荣誉标记
func TrackPersonalHonorLoss(e *Engine, m *Metrics) {
	e.OnReaction(EventOnStatusTokenDiscarded, func(event *GameEvent) {
		if event.Token.IsPersonalHonorKind() {
			m.observeHonorLost(string(event.Token.Kind))
		}
	})
}
