package app

import (
	"github.com/rnbwlabs/survey/config"
	"github.com/rnbwlabs/survey/mail"
	"github.com/rnbwlabs/survey/model"
	"github.com/rnbwlabs/survey/survey"
)

type App struct {
	config.Config
	mail.Sender
	Schema model.Schema
	Rules  survey.RuleSet
}
