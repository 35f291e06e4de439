package onboarding

import (
	"fmt"

	"github.com/charmbracelet/huh"

	plandto "trainlog/internal/modules/plan/dto"
)

// Run walks the user through the questionnaire and returns the answers
// keyed by question id. Returns huh.ErrUserAborted if the user bails out.
func Run(questions []plandto.QuestionOutput, dark bool) (map[string]string, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no onboarding questions defined")
	}

	answers := make([]string, len(questions))
	groups := make([]*huh.Group, 0, len(questions))
	for i, q := range questions {
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt.Emoji+"  "+opt.Label, opt.Value))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Prompt).
				Options(options...).
				Value(&answers[i]),
		))
	}

	form := huh.NewForm(groups...)
	if dark {
		form = form.WithTheme(huh.ThemeCatppuccin())
	}
	if err := form.Run(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(questions))
	for i, q := range questions {
		out[q.ID] = answers[i]
	}
	return out, nil
}
