// Command apicheck exercises a running portfolio API instance end to end and
// reports pass/fail per check. It is a deployment smoke test, not a unit suite.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/dfulfagar/portfolio-api/internal/auth"
	"github.com/dfulfagar/portfolio-api/internal/dto"
	"github.com/dfulfagar/portfolio-api/internal/entity"
)

type checker struct {
	baseURL    string
	client     *http.Client
	adminToken string
	log        zerolog.Logger
	passed     int
	failed     int
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080/api", "base URL of the running API, including the /api prefix")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	c := &checker{
		baseURL: strings.TrimRight(*baseURL, "/"),
		client:  &http.Client{Timeout: *timeout},
		log:     log,
	}

	// When the deployment gates /api/contacts, mint a token with the same secret.
	if secret := os.Getenv("ADMIN_JWT_SECRET"); secret != "" {
		token, err := auth.NewTokenManager(secret, time.Hour).Mint("apicheck")
		if err != nil {
			log.Fatal().Err(err).Msg("mint admin token")
		}
		c.adminToken = token
	}

	c.checkHealth()
	c.checkProfile()
	c.checkExperience()
	c.checkSkills()
	c.checkAchievements()
	c.checkEducation()
	c.checkContactValidation()
	c.checkContactRoundTrip()
	c.checkUnknownRoute()

	log.Info().Int("passed", c.passed).Int("failed", c.failed).Msg("apicheck finished")
	if c.failed > 0 {
		os.Exit(1)
	}
}

func (c *checker) report(name string, err error) {
	if err != nil {
		c.failed++
		c.log.Error().Err(err).Str("check", name).Msg("FAIL")
		return
	}
	c.passed++
	c.log.Info().Str("check", name).Msg("PASS")
}

func (c *checker) getJSON(path string, out any, headers map[string]string) (int, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *checker) postJSON(path string, body any, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *checker) checkHealth() {
	c.report("health", func() error {
		var info dto.RootInfo
		status, err := c.getJSON("/", &info, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		if info.Message == "" || info.Version == "" {
			return fmt.Errorf("missing message or version: %+v", info)
		}
		return nil
	}())
}

func (c *checker) checkProfile() {
	c.report("profile", func() error {
		var profile entity.Profile
		status, err := c.getJSON("/profile", &profile, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		if profile.ID == "" {
			return fmt.Errorf("profile id is empty")
		}
		if profile.Name == "" || profile.Email == "" || profile.About.Headline == "" {
			return fmt.Errorf("profile is missing required fields: %+v", profile)
		}
		return nil
	}())
}

func (c *checker) checkExperience() {
	c.report("experience", func() error {
		var entries []entity.Experience
		status, err := c.getJSON("/experience", &entries, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Order < entries[i-1].Order {
				return fmt.Errorf("entries not sorted by order: %d before %d", entries[i-1].Order, entries[i].Order)
			}
		}
		return nil
	}())
}

func (c *checker) checkSkills() {
	c.report("skills", func() error {
		var skills entity.Skills
		status, err := c.getJSON("/skills", &skills, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		if len(skills.Technical) == 0 {
			return fmt.Errorf("skills has no technical categories")
		}
		return nil
	}())
}

func (c *checker) checkAchievements() {
	c.report("achievements", func() error {
		var entries []entity.Achievement
		status, err := c.getJSON("/achievements", &entries, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		return nil
	}())
}

func (c *checker) checkEducation() {
	c.report("education", func() error {
		var education entity.Education
		status, err := c.getJSON("/education", &education, nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		if education.Degree == "" {
			return fmt.Errorf("education degree is empty")
		}
		return nil
	}())
}

func (c *checker) checkContactValidation() {
	c.report("contact validation", func() error {
		status, err := c.postJSON("/contact", map[string]string{"name": "Test", "invalid_field": "value"}, nil)
		if err != nil {
			return err
		}
		if status != http.StatusUnprocessableEntity {
			return fmt.Errorf("expected 422 for invalid payload, got %d", status)
		}
		return nil
	}())
}

func (c *checker) checkContactRoundTrip() {
	c.report("contact round trip", func() error {
		form := dto.ContactForm{
			Name:    "John Smith",
			Email:   "john.smith@techcorp.com",
			Company: "TechCorp Solutions",
			Subject: "Partnership Opportunity",
			Message: "We are interested in discussing a potential partnership for enterprise CRM solutions.",
		}

		var ack dto.ContactAck
		status, err := c.postJSON("/contact", form, &ack)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200, got %d", status)
		}
		if !ack.Success || ack.ID == "" {
			return fmt.Errorf("unexpected ack: %+v", ack)
		}

		headers := map[string]string{}
		if c.adminToken != "" {
			headers["Authorization"] = "Bearer " + c.adminToken
		}

		var entries []entity.ContactEntry
		status, err = c.getJSON("/contacts", &entries, headers)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("expected 200 listing contacts, got %d", status)
		}
		for _, entry := range entries {
			if entry.ID == ack.ID {
				if entry.Name != form.Name {
					return fmt.Errorf("stored name %q does not match submitted %q", entry.Name, form.Name)
				}
				if entry.Status != entity.ContactStatusNew {
					return fmt.Errorf("expected status %q, got %q", entity.ContactStatusNew, entry.Status)
				}
				return nil
			}
		}
		return fmt.Errorf("submitted entry %s not found in listing", ack.ID)
	}())
}

func (c *checker) checkUnknownRoute() {
	c.report("unknown route", func() error {
		status, err := c.getJSON("/nonexistent", nil, nil)
		if err != nil {
			return err
		}
		if status != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", status)
		}
		return nil
	}())
}
