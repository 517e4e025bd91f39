package question

// Seed provides the default fundraising questionnaire in presentation
// order: campaign basics first, then tone and introduction material, then
// struggle and help prompts, with background questions interleaved where
// the wizard asks them.
func Seed() []Definition {
	return []Definition{
		{
			ID:       "name",
			Text:     "What is your name?",
			Category: CategoryBasicInfo,
			Required: true,
		},
		{
			ID:       "gender",
			Text:     "What are your pronouns? This helps us write your story correctly (he/him, she/her, they/them, etc.)",
			Category: CategoryBasicInfo,
			Required: true,
		},
		{
			ID:       "condition",
			Text:     "What is your medical condition or injury? Please provide a brief description of your diagnosis or what happened",
			Category: CategoryBasicInfo,
			Required: true,
		},
		{
			ID:       "age",
			Text:     "How old are you? This helps supporters understand your life stage",
			Category: CategoryBasicInfo,
			Required: false,
		},
		{
			ID:       "tone",
			Text:     "What tone feels right for your story? Would you like to sound hopeful, serious, or something else?",
			Category: CategoryIntro,
			Required: false,
		},
		{
			ID:       "identity",
			Text:     "Who are you outside of your diagnosis? Tell us about your work, hobbies, family, etc.",
			Category: CategoryIntro,
			Required: false,
		},
		{
			ID:           "interesting_things",
			Text:         "What are some interesting things about you?",
			FollowUpText: "How would your friends and family describe you?",
			Category:     CategoryIntro,
			Required:     false,
		},
		{
			ID:           "loved_qualities",
			Text:         "What do other people love about you?",
			FollowUpText: "Are there any quotes, compliments, or traits people mention?",
			Category:     CategoryIntro,
			Required:     false,
		},
		{
			ID:       "struggles",
			Text:     "What are 1-5 things you struggle with because of your condition? This can be daily activities, feelings, or anything that is hard.",
			Category: CategoryStruggle,
			Required: true,
		},
		{
			ID:       "how_funds_help",
			Text:     "How could these funds help change your life? What will you be able to enjoy again? Or for the first time?",
			Category: CategoryHelp,
			Required: true,
		},
		{
			ID:       "fundraising_for",
			Text:     "What are you fundraising for? If cost is known (or rough estimate) please add it.",
			Category: CategoryHelp,
			Required: true,
		},
		{
			ID:       "other_help",
			Text:     "How can people help besides donating money? Can people visit? Help with car rides? Gas money? Food? Clothing? Etc.",
			Category: CategoryHelp,
			Required: false,
		},
		{
			ID:       "summary",
			Text:     "Can you summarize your fundraiser in one sentence?",
			Category: CategoryHelp,
			Required: false,
		},
		{
			ID:       "hospital",
			Text:     "What hospital are you at?",
			Category: CategoryBackground,
			Required: false,
		},
		{
			ID:       "diagnosis_thoughts",
			Text:     "What was going through your mind when you got your diagnosis?",
			Category: CategoryStruggle,
			Required: false,
		},
		{
			ID:       "strong_vulnerable_moment",
			Text:     "Can you describe a moment that made you feel strong or vulnerable lately? What helped you through it?",
			Category: CategoryStruggle,
			Required: false,
		},
		{
			ID:       "unexpected_challenge",
			Text:     "What has been the most unexpected challenge about all of this? How do you handle it?",
			Category: CategoryStruggle,
			Required: false,
		},
		{
			ID:           "other_resources",
			Text:         "Have you tried other resources or funding before this?",
			FollowUpText: "Why is the fundraiser the best next step?",
			Category:     CategoryBackground,
			Required:     false,
		},
		{
			ID:       "time_sensitive",
			Text:     "Are there any time-sensitive parts of your care or recovery right now? A scheduled surgery, treatment deadline",
			Category: CategoryHelp,
			Required: false,
		},
		{
			ID:       "looking_forward",
			Text:     "What is something you're looking forward to if this goes well? Seeing a family member, going on a trip, even walking your dog",
			Category: CategoryHelp,
			Required: false,
		},
	}
}
