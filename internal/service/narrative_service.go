package service

import (
	"bytes"
	"fcc_dashboard/internal/assets"
	"fcc_dashboard/internal/model"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// NarrativeService 案例分析文本，HTML 只转换一次
type NarrativeService struct {
	markdown string

	once sync.Once
	html string
	err  error
}

func NewNarrativeService() *NarrativeService {
	return &NarrativeService{markdown: assets.Narrative}
}

func (s *NarrativeService) Markdown() string {
	return s.markdown
}

func (s *NarrativeService) HTML() (string, error) {
	s.once.Do(func() {
		md := goldmark.New(goldmark.WithExtensions(extension.Table))
		var buf bytes.Buffer
		if err := md.Convert([]byte(s.markdown), &buf); err != nil {
			s.err = err
			return
		}
		s.html = buf.String()
	})
	return s.html, s.err
}

func (s *NarrativeService) GetNarrative() (*model.Narrative, error) {
	html, err := s.HTML()
	if err != nil {
		return nil, err
	}
	return &model.Narrative{Markdown: s.markdown, HTML: html}, nil
}

// Terminal 终端渲染，width 为换行宽度
func (s *NarrativeService) Terminal(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(s.markdown)
}
