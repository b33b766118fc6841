package entities

type CardLocation string

const (
	LocationPlayArea       CardLocation = "play area"
	LocationDynastyDiscard CardLocation = "dynasty discard pile"
)

const taintedSkillBonus = 2

// Card 场上的角色卡
type Card struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Owner           string         `json:"owner"`
	Location        CardLocation   `json:"location"`
	MilitarySkill   int            `json:"militarySkill"`
	PoliticalSkill  int            `json:"politicalSkill"`
	Glory           int            `json:"glory"`
	PersonalHonorID string         `json:"personalHonorID,omitempty"` // 指向 StatusTokens 中的荣耀/耻辱标记
	StatusTokens    []*StatusToken `json:"statusTokens"`
}

func (c *Card) CardID() string {
	return c.ID
}

func (c *Card) DisplayName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Card) InPlay() bool {
	return c != nil && c.Location == LocationPlayArea
}

// PersonalHonor 返回当前的个人荣誉标记，没有则为 nil
func (c *Card) PersonalHonor() *StatusToken {
	if c == nil || c.PersonalHonorID == "" {
		return nil
	}
	return c.StatusToken(c.PersonalHonorID)
}

func (c *Card) StatusToken(tokenID string) *StatusToken {
	if c == nil {
		return nil
	}
	for _, t := range c.StatusTokens {
		if t.ID == tokenID {
			return t
		}
	}
	return nil
}

func (c *Card) HasStatusToken(kind TokenKind) bool {
	for _, t := range c.StatusTokens {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func (c *Card) AddStatusToken(token *StatusToken) {
	token.CardID = c.ID
	c.StatusTokens = append(c.StatusTokens, token)
}

// RemoveStatusToken 移除标记；如果移除的是个人荣誉标记，同时清空引用
func (c *Card) RemoveStatusToken(token *StatusToken) bool {
	if c == nil || token == nil {
		return false
	}
	for i, t := range c.StatusTokens {
		if t.SameAs(token) {
			c.StatusTokens = append(c.StatusTokens[:i], c.StatusTokens[i+1:]...)
			if c.PersonalHonorID == token.ID {
				c.PersonalHonorID = ""
			}
			return true
		}
	}
	return false
}

func (c *Card) IsHonored() bool {
	ph := c.PersonalHonor()
	return ph != nil && ph.Kind == TokenHonored
}

func (c *Card) IsDishonored() bool {
	ph := c.PersonalHonor()
	return ph != nil && ph.Kind == TokenDishonored
}

func (c *Card) IsOrdinary() bool {
	return c.PersonalHonor() == nil
}

func (c *Card) IsTainted() bool {
	return c.HasStatusToken(TokenTainted)
}

// MakeOrdinary 去掉个人荣誉标记，回到普通状态
func (c *Card) MakeOrdinary() {
	if c == nil {
		return
	}
	if ph := c.PersonalHonor(); ph != nil {
		c.RemoveStatusToken(ph)
	}
	c.PersonalHonorID = ""
}

// Honor 耻辱卡被授荣则变为普通
func (c *Card) Honor() {
	if c.IsDishonored() {
		c.MakeOrdinary()
		return
	}
	if c.IsHonored() {
		return
	}
	c.setPersonalHonor(TokenHonored)
}

// Dishonor 荣耀卡被羞辱则变为普通
func (c *Card) Dishonor() {
	if c.IsHonored() {
		c.MakeOrdinary()
		return
	}
	if c.IsDishonored() {
		return
	}
	c.setPersonalHonor(TokenDishonored)
}

func (c *Card) Taint() {
	if c.IsTainted() {
		return
	}
	c.AddStatusToken(NewStatusToken(TokenTainted, c.ID))
}

func (c *Card) setPersonalHonor(kind TokenKind) {
	token := NewStatusToken(kind, c.ID)
	c.AddStatusToken(token)
	c.PersonalHonorID = token.ID
}

func (c *Card) MilitarySkillTotal() int {
	return c.skillTotal(c.MilitarySkill)
}

func (c *Card) PoliticalSkillTotal() int {
	return c.skillTotal(c.PoliticalSkill)
}

func (c *Card) skillTotal(base int) int {
	skill := base
	if c.IsTainted() {
		skill += taintedSkillBonus
	}
	switch {
	case c.IsHonored():
		skill += c.Glory
	case c.IsDishonored():
		skill -= c.Glory
	}
	if skill < 0 {
		return 0
	}
	return skill
}
