// Package survey defines the RNBW questionnaire and the validation
// rules derived from it. The schema is the single source of truth for
// which questions exist, in what order, with what options; changing the
// questionnaire is an edit here, never a runtime operation.
package survey

import "github.com/rnbwlabs/survey/model"

// Schema is the active questionnaire. Read-only after init; main
// refuses to start if Schema.Check fails.
var Schema = model.Schema{
	{
		ID:       "contact",
		TitleKey: "section.contact",
		Title:    "Contact Information",
		Questions: []model.Question{
			{
				ID:       "name",
				Type:     model.TypeText,
				TitleKey: "question.name",
				Title:    "Name",
				Required: true,
			},
			{
				ID:       "email",
				Type:     model.TypeEmail,
				TitleKey: "question.email",
				Title:    "Email",
				Required: true,
			},
		},
	},
	{
		ID:       "interest",
		TitleKey: "section.interest",
		Title:    "Interest and Awareness",
		Questions: []model.Question{
			{
				ID:       "interestLevel",
				Type:     model.TypeRadio,
				TitleKey: "question.interestLevel",
				Title:    "How interested are you in the RNBW device?",
				Required: true,
				Options: []model.QuestionOption{
					{ID: "very-interested", LabelKey: "option.veryInterested", Label: "Very interested"},
					{ID: "somewhat-interested", LabelKey: "option.somewhatInterested", Label: "Somewhat interested"},
					{ID: "not-interested", LabelKey: "option.notInterested", Label: "Not interested"},
				},
			},
			{
				ID:       "heardFrom",
				Type:     model.TypeCheckbox,
				TitleKey: "question.heardFrom",
				Title:    "How did you hear about the RNBW device?",
				Required: false,
				Options: []model.QuestionOption{
					{ID: "social-media", LabelKey: "option.socialMedia", Label: "Social media"},
					{ID: "friend", LabelKey: "option.friend", Label: "Friend or family"},
					{ID: "news", LabelKey: "option.news", Label: "News article"},
					{ID: "advertisement", LabelKey: "option.advertisement", Label: "Advertisement"},
					{ID: "other", LabelKey: "option.other", Label: "Other"},
				},
			},
		},
	},
	{
		ID:       "features",
		TitleKey: "section.features",
		Title:    "Product Features",
		Questions: []model.Question{
			{
				ID:       "importantFeatures",
				Type:     model.TypeCheckbox,
				TitleKey: "question.importantFeatures",
				Title:    "Which features are most important to you? (Select all that apply)",
				Required: true,
				Options: []model.QuestionOption{
					{ID: "design", LabelKey: "option.design", Label: "Sleek design and portability"},
					{ID: "battery", LabelKey: "option.battery", Label: "Long battery life"},
					{ID: "connectivity", LabelKey: "option.connectivity", Label: "Seamless connectivity with other devices"},
					{ID: "ai", LabelKey: "option.ai", Label: "AI-powered capabilities"},
					{ID: "customization", LabelKey: "option.customization", Label: "Customizable settings and appearance"},
				},
			},
			{
				ID:       "additionalFeature",
				Type:     model.TypeTextarea,
				TitleKey: "question.additionalFeature",
				Title:    "Is there any other feature you would like to see in the RNBW device?",
				Required: false,
			},
		},
	},
	{
		ID:       "pricing",
		TitleKey: "section.pricing",
		Title:    "Pricing and Purchase Intent",
		Questions: []model.Question{
			{
				ID:       "priceRange",
				Type:     model.TypeRadio,
				TitleKey: "question.priceRange",
				Title:    "What price range would you consider reasonable for this device?",
				Required: true,
				Options: []model.QuestionOption{
					{ID: "under-100", LabelKey: "option.under100", Label: "Under $100"},
					{ID: "100-200", LabelKey: "option.100to200", Label: "$100 - $200"},
					{ID: "200-300", LabelKey: "option.200to300", Label: "$200 - $300"},
					{ID: "over-300", LabelKey: "option.over300", Label: "Over $300"},
				},
			},
			{
				ID:       "purchaseIntent",
				Type:     model.TypeRadio,
				TitleKey: "question.purchaseIntent",
				Title:    "How likely are you to purchase the RNBW device when it becomes available?",
				Required: true,
				Options: []model.QuestionOption{
					{ID: "very-likely", LabelKey: "option.veryLikely", Label: "Very likely"},
					{ID: "somewhat-likely", LabelKey: "option.somewhatLikely", Label: "Somewhat likely"},
					{ID: "unlikely", LabelKey: "option.unlikely", Label: "Unlikely"},
					{ID: "very-unlikely", LabelKey: "option.veryUnlikely", Label: "Very unlikely"},
				},
			},
		},
	},
	{
		ID:       "feedback",
		TitleKey: "section.feedback",
		Title:    "Additional Feedback",
		Questions: []model.Question{
			{
				ID:       "generalFeedback",
				Type:     model.TypeTextarea,
				TitleKey: "question.generalFeedback",
				Title:    "Do you have any other comments or suggestions about the RNBW device?",
				Required: false,
			},
		},
	},
}
