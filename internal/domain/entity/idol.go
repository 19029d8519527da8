package entity

import "time"

// Idol is a single performer. Artists list idols as members and
// photocards point at the idol pictured on them.
type Idol struct {
	ID       string    // Store-assigned identifier.
	Name     string    // Stage name.
	Birthday time.Time // Zero when unknown.
	Image    Image     // Profile picture.
}

func (i *Idol) EntityID() string             { return i.ID }
func (i *Idol) EntityCollection() Collection { return CollectionIdols }

// Ref returns a reference to this idol.
func (i *Idol) Ref() Ref { return NewRef(CollectionIdols, i.ID) }
