package soc

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseCourse parses an SOC search result page and extracts the sections of
// the first (and only) course block.
func ParseCourse(courseID string, r io.Reader) ([]RawSection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	firstCourse := doc.Find("#courses-page div.course").First()
	if firstCourse.Length() == 0 {
		// Unknown course IDs render an empty results page, not an error
		return nil, nil
	}

	courseInfo := firstCourse.Find(".course-info-container")
	var sections []RawSection

	courseInfo.Find(".sections-container .section").Each(func(i int, sel *goquery.Selection) {
		sectionInfo := sel.Find(".section-info-container")
		seatsInfo := sectionInfo.Find(".seats-info-group .seats-info")
		classInfo := sel.Find(".class-days-container")
		number := strings.TrimSpace(sectionInfo.Find(".section-id").Text())

		section := RawSection{
			Course:    courseID,
			SectionID: courseID + "-" + number,
			Number:    number,
			Seats:     strings.TrimSpace(seatsInfo.Find(".total-seats-count").Text()),
			OpenSeats: strings.TrimSpace(seatsInfo.Find(".open-seats-count").Text()),
			Waitlist:  strings.TrimSpace(seatsInfo.Find(".waitlist-count").Text()),
		}

		sectionInfo.Find(".section-instructors .section-instructor").Each(func(j int, instr *goquery.Selection) {
			section.Instructors = append(section.Instructors, strings.TrimSpace(instr.Text()))
		})

		// One row per meeting block
		classInfo.Find(".row").Each(func(j int, row *goquery.Selection) {
			classType := strings.TrimSpace(row.Find(".class-type").Text())
			if len(classType) > 3 {
				classType = classType[:3] + "."
			}

			section.Meetings = append(section.Meetings, RawMeeting{
				Days:      strings.TrimSpace(row.Find(".section-days").Text()),
				StartTime: strings.TrimSpace(row.Find(".class-start-time").Text()),
				EndTime:   strings.TrimSpace(row.Find(".class-end-time").Text()),
				Building:  strings.TrimSpace(row.Find(".building-code").Text()),
				Room:      strings.TrimSpace(row.Find(".class-room").Text()),
				ClassType: classType,
			})
		})

		sections = append(sections, section)
	})

	return sections, nil
}
