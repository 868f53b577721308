package model

type Character struct {
	URL                 string   `json:"url"`
	Id                  string   `json:"id"`
	CreatedByRun        Ref      `json:"created_by_run"`
	Line                Ref      `json:"line"`
	Sequence            int      `json:"sequence"`
	XMin                int      `json:"x_min"`
	XMax                int      `json:"x_max"`
	CharacterClass      Ref      `json:"character_class"`
	HumanCharacterClass Ref      `json:"human_character_class"`
	ClassProbability    float64  `json:"class_probability"`
	DamageScore         *float64 `json:"damage_score"`
	Label               string   `json:"label"`
	Image               Image    `json:"image"`
	Exposure            *int     `json:"exposure"`
	Offset              *int     `json:"offset"`
}

// Class is the human assignment when one exists, otherwise the machine one.
func (c *Character) Class() string {
	if !c.HumanCharacterClass.IsZero() {
		return c.HumanCharacterClass.Id
	}
	return c.CharacterClass.Id
}
