package domain

// MemberRef - участник команды, подтянутый из коллекции users.
type MemberRef struct {
	Name       string
	RollNumber string
}
