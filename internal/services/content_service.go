package services

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"syncro/internal/data/embedded"
	"syncro/pkg/synctypes"
)

// ContentService serves the static tables every screen renders.
type ContentService struct {
	initialized bool
	data        []byte
	content     synctypes.Content
}

// NewContentService creates a ContentService over the embedded content file.
func NewContentService() *ContentService {
	return &ContentService{data: embedded.ContentData}
}

// NewContentServiceFromYAML creates a ContentService over custom YAML data.
func NewContentServiceFromYAML(data []byte) *ContentService {
	return &ContentService{data: data}
}

// Name returns the service name "content" for registration.
func (c *ContentService) Name() string {
	return "content"
}

// Initialize parses the content file.
func (c *ContentService) Initialize() error {
	var content synctypes.Content
	if err := yaml.Unmarshal(c.data, &content); err != nil {
		return fmt.Errorf("failed to parse content: %w", err)
	}
	if len(content.Docs) == 0 {
		return fmt.Errorf("content has no documentation sections")
	}
	c.content = content
	c.initialized = true
	return nil
}

// Content returns the parsed content.
func (c *ContentService) Content() *synctypes.Content {
	return &c.content
}

// DocSection looks up a documentation tab by id.
func (c *ContentService) DocSection(id string) (synctypes.DocSection, bool) {
	for _, s := range c.content.Docs {
		if s.ID == id {
			return s, true
		}
	}
	return synctypes.DocSection{}, false
}

// DefaultDocSection returns the first documentation tab.
func (c *ContentService) DefaultDocSection() synctypes.DocSection {
	if len(c.content.Docs) == 0 {
		return synctypes.DocSection{}
	}
	return c.content.Docs[0]
}

// FindMember returns the team member with the given email, ignoring case.
func (c *ContentService) FindMember(email string) (synctypes.TeamMember, bool) {
	for _, m := range c.content.Team {
		if strings.EqualFold(m.Email, email) {
			return m, true
		}
	}
	return synctypes.TeamMember{}, false
}
