package soc

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://app.testudo.umd.edu/soc/search"

// Client handles HTTP requests to the Testudo Schedule of Classes website
type Client struct {
	httpClient *http.Client
	termID     string
}

// NewClient creates a new SOC client for the closest upcoming term
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		termID: ClosestTermID(time.Now()),
	}
}

// TermID returns the term the client scrapes against
func (c *Client) TermID() string {
	return c.termID
}

// searchURL builds the SOC search URL for a single course. The long tail of
// parameters matches what the search form submits; dropping them changes
// which sections the page includes.
func (c *Client) searchURL(courseID string) string {
	q := url.Values{}
	q.Set("courseId", courseID)
	q.Set("termId", c.termID)
	q.Set("_openSectionsOnly", "on")
	q.Set("creditCompare", ">=")
	q.Set("credits", "0.0")
	q.Set("courseLevelFilter", "ALL")
	q.Set("teachingCenter", "ALL")
	q.Set("_facetoface", "on")
	q.Set("_blended", "on")
	q.Set("_online", "on")
	for i := 1; i <= 5; i++ {
		q.Set(fmt.Sprintf("_classDay%d", i), "on")
	}
	return baseURL + "?" + q.Encode()
}

// get attempts an HTTP GET request up to 3 times for 502/503/504 or
// transport errors, backing off a little more on each attempt
func (c *Client) get(reqURL string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		// The SOC blocks default Go user agents
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

		resp, lastErr = c.httpClient.Do(req)

		if lastErr == nil && (resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return nil, fmt.Errorf("failed after 3 attempts: %v", lastErr)
}

// FetchSections downloads and parses the section listing for a course,
// consulting the local disk cache first
func (c *Client) FetchSections(courseID string) ([]RawSection, error) {
	if cached, ok := readCache(c.termID, courseID); ok {
		return cached, nil
	}

	resp, err := c.get(c.searchURL(courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course %s: %w", courseID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching course %s", resp.StatusCode, courseID)
	}

	sections, err := ParseCourse(courseID, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse course %s: %w", courseID, err)
	}

	writeCache(c.termID, courseID, sections)
	return sections, nil
}
