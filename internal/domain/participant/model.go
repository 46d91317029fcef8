package participant

type Participant struct {
	ID       string
	Name     string
	Nickname string
	ImageURL string
}
