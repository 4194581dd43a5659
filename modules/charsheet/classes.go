package charsheet

import "slices"

// RangerID is the class that earns a second opinion.
const RangerID = 9

var classes = []Class{
	{ID: 1, Name: "Artificer"},
	{ID: 2, Name: "Barbarian"},
	{ID: 3, Name: "Bard"},
	{ID: 4, Name: "Cleric"},
	{ID: 5, Name: "Druid"},
	{ID: 6, Name: "Fighter"},
	{ID: 7, Name: "Monk"},
	{ID: 8, Name: "Paladin"},
	{ID: RangerID, Name: "Ranger"},
	{ID: 10, Name: "Rogue"},
	{ID: 11, Name: "Sorcerer"},
	{ID: 12, Name: "Warlock"},
	{ID: 13, Name: "Wizard"},
}

// Classes returns the class catalog ordered by id.
func Classes() []Class {
	return slices.Clone(classes)
}

// ClassByID looks up a catalog entry.
func ClassByID(id int) (Class, bool) {
	i := slices.IndexFunc(classes, func(c Class) bool { return c.ID == id })
	if i < 0 {
		return Class{}, false
	}
	return classes[i], true
}

// ClassRemark is the comment shown when a class is picked.
func ClassRemark(id int) string {
	if id == RangerID {
		return "Would You Like To Reconsider That"
	}
	return "You Have Chosen Wisely"
}
