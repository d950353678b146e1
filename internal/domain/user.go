package domain

// User is an assignable person.
type User struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img,omitempty"`
}
