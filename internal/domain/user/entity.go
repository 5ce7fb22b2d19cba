package user

// User represents a person record served by the upstream user API.
type User struct {
	ID   int64  `json:"id"`   // ID is the unique identifier for the user
	Name string `json:"name"` // Name is the display name of the user
	Age  int64  `json:"age"`  // Age is the user's age in years
}
