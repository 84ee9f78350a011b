package settings

import "time"

// User is the identity of the person running this KouChat instance, as
// announced to the other clients on the network.
type User struct {
	Nick            string
	OperatingSystem string
	// Client is empty until Store.SetClient has been called.
	Client    string
	LastIdle  time.Time
	LogonTime time.Time
	Me        bool

	code int
}

// NewUser creates a user with a fixed user code.
func NewUser(nick string, code int) *User {
	return &User{Nick: nick, code: code}
}

// Code is the unique id of the user on the network. It never changes.
func (u *User) Code() int {
	return u.code
}
