package seedmodels

// SeedWord is one vocabulary entry in the seed file.
type SeedWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// SeedUser is an account and the words it starts with.
type SeedUser struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Words     []SeedWord `json:"words"`
}

// SeedFile is the top-level document of the seed file.
type SeedFile struct {
	Users []SeedUser `json:"users"`
}
