package soc

// RawMeeting is one meeting row as scraped from the SOC, with compact day
// codes (e.g. "MWF") and 12-hour time strings (e.g. "11:00am"). Empty time
// strings mean an online or asynchronous meeting.
type RawMeeting struct {
	Days      string `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Building  string `json:"building"`
	Room      string `json:"room"`
	ClassType string `json:"classtype"`
}

// RawSection is one section block as scraped from the SOC. Seat counts are
// kept as the page's strings so they round-trip untouched to presentation.
type RawSection struct {
	Course      string       `json:"course"`
	SectionID   string       `json:"section_id"`
	Number      string       `json:"number"`
	Instructors []string     `json:"instructors"`
	Seats       string       `json:"seats"`
	OpenSeats   string       `json:"open_seats"`
	Waitlist    string       `json:"waitlist"`
	Meetings    []RawMeeting `json:"meetings"`
}
