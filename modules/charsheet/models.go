package charsheet

// User is the record produced by a successful submit.
type User struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Address      string         `json:"address"`
	Emails       []UserEmail    `json:"emails"`
	PhoneNumbers []UserPhone    `json:"phoneNumbers"`
	Class        CharacterClass `json:"class"`
}

type UserEmail struct {
	Email     string `json:"email"`
	IsPrimary bool   `json:"isPrimary"`
}

type UserPhone struct {
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
}

// CharacterClass pairs the chosen class name with the character level.
type CharacterClass struct {
	Class string `json:"class"`
	Level int    `json:"level"`
}

// Class is an entry of the selectable class catalog.
type Class struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
