package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"syncro/internal/cache"
	"syncro/internal/logger"
	"syncro/internal/navigation"
)

// MarkdownService renders documentation markdown with Glamour, matching the
// Glamour style to the active theme mode. Rendered output is cached per style
// and source, so redrawing an unchanged documentation tab is cheap.
type MarkdownService struct {
	initialized bool
	wordWrap    int
	plain       bool

	mu        sync.Mutex
	renderers map[string]*glamour.TermRenderer
	rendered  *cache.LRU
}

// NewMarkdownService creates a new MarkdownService. plain selects the
// colorless "notty" style regardless of theme.
func NewMarkdownService(wordWrap int, plain bool) *MarkdownService {
	if wordWrap <= 0 {
		wordWrap = 80
	}
	return &MarkdownService{
		wordWrap:  wordWrap,
		plain:     plain,
		renderers: make(map[string]*glamour.TermRenderer),
		rendered:  cache.NewLRU(32),
	}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return "markdown"
}

// Initialize builds the renderer for the default style.
func (m *MarkdownService) Initialize() error {
	if _, err := m.renderer(m.styleFor(navigation.ThemeLight)); err != nil {
		return err
	}
	m.initialized = true
	logger.Debug("MarkdownService initialized successfully")
	return nil
}

// Render renders markdown for the given theme mode.
func (m *MarkdownService) Render(markdown string, mode navigation.ThemeMode) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	style := m.styleFor(mode)
	key := style + "\x00" + markdown
	if out, ok := m.rendered.Get(key); ok {
		return out, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	renderer, err := m.rendererLocked(style)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	m.rendered.Set(key, rendered)
	return rendered, nil
}

// CacheStats reports hits and misses of the rendered-output cache.
func (m *MarkdownService) CacheStats() cache.Stats {
	return m.rendered.Stats()
}

// styleFor maps a theme mode to a Glamour standard style.
func (m *MarkdownService) styleFor(mode navigation.ThemeMode) string {
	if m.plain {
		return styles.NoTTYStyle
	}
	if mode == navigation.ThemeDark {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

func (m *MarkdownService) renderer(style string) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rendererLocked(style)
}

// rendererLocked returns the cached renderer for style. Glamour renderers are
// not safe for concurrent use, so callers hold mu while rendering.
func (m *MarkdownService) rendererLocked(style string) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[style]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	m.renderers[style] = r
	return r, nil
}
