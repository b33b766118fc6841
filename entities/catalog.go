package entities

import "github.com/google/uuid"

// CharacterDef 角色卡模板
type CharacterDef struct {
	Name           string `json:"name"`
	MilitarySkill  int    `json:"militarySkill"`
	PoliticalSkill int    `json:"politicalSkill"`
	Glory          int    `json:"glory"`
}

// StartingCharacters 开局发到场上的角色池
var StartingCharacters = []CharacterDef{
	{Name: "Doji Whisperer", MilitarySkill: 0, PoliticalSkill: 3, Glory: 2},
	{Name: "Kakita Yoshi", MilitarySkill: 2, PoliticalSkill: 4, Glory: 2},
	{Name: "Akodo Toturi", MilitarySkill: 6, PoliticalSkill: 3, Glory: 3},
	{Name: "Matsu Berserker", MilitarySkill: 3, PoliticalSkill: 0, Glory: 1},
	{Name: "Bayushi Kachiko", MilitarySkill: 2, PoliticalSkill: 6, Glory: 3},
	{Name: "Soshi Illusionist", MilitarySkill: 0, PoliticalSkill: 2, Glory: 1},
	{Name: "Hida Kisada", MilitarySkill: 6, PoliticalSkill: 3, Glory: 3},
	{Name: "Shiba Tsukune", MilitarySkill: 3, PoliticalSkill: 3, Glory: 3},
	{Name: "Togashi Yokuni", MilitarySkill: 5, PoliticalSkill: 5, Glory: 3},
	{Name: "Shinjo Altansarnai", MilitarySkill: 5, PoliticalSkill: 3, Glory: 2},
	{Name: "Asahina Artisan", MilitarySkill: 0, PoliticalSkill: 3, Glory: 2},
	{Name: "Otomo Courtier", MilitarySkill: 0, PoliticalSkill: 2, Glory: 2},
}

// NewCard 按模板生成一张在场的角色卡
func (d CharacterDef) NewCard(owner string) *Card {
	return &Card{
		ID:             uuid.New().String(),
		Name:           d.Name,
		Owner:          owner,
		Location:       LocationPlayArea,
		MilitarySkill:  d.MilitarySkill,
		PoliticalSkill: d.PoliticalSkill,
		Glory:          d.Glory,
		StatusTokens:   []*StatusToken{},
	}
}
