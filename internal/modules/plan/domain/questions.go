package domain

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Emoji string `yaml:"emoji"`
}

type Question struct {
	ID      string   `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Options []Option `yaml:"options"`
}

var (
	questionsOnce sync.Once
	questions     []Question
)

// Questions returns the fixed onboarding questionnaire. The definition is
// embedded; a decode failure is a build defect and panics at first use.
func Questions() []Question {
	questionsOnce.Do(func() {
		var doc struct {
			Questions []Question `yaml:"questions"`
		}
		if err := yaml.Unmarshal(questionsYAML, &doc); err != nil {
			panic(fmt.Sprintf("decode embedded questionnaire: %v", err))
		}
		questions = doc.Questions
	})
	return questions
}

func questionByID(id string) (Question, bool) {
	for _, q := range Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func (q Question) hasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
