package swot

// QuestionItem is a single reflection question with an optional illustrative
// sample answer. Static default questions carry no sample answer.
type QuestionItem struct {
	Question     string
	SampleAnswer string
}

// Structure holds an accepted AI-generated question set, keyed by category.
// Lists in a Structure do not yet include the trailing open-ended question;
// QuestionsFor appends it.
type Structure map[Category][]QuestionItem

// staticQuestions are the built-in defaults used when no AI structure is
// available. Each list ends with an open-ended prompt that is treated as the
// trailing optional question.
var staticQuestions = map[Category][]string{
	CategoryStrengths: {
		"What technical or soft skills do you excel at? e.g. team leadership, analytical thinking, Excel, public speaking",
		"What achievements or accomplishments are you proud of? e.g. Led university project, internship promotion, won case competition",
		"What personal qualities make you well-suited for your desired career? e.g. Curious, adaptable, problem-solver, driven",
		"What feedback have you received from mentors or peers about your strengths? e.g. Reliable, clear communicator, fast learner, team player",
		"Any other areas you wish to address?",
	},
	CategoryWeaknesses: {
		"What skills or knowledge areas do you feel need improvement? e.g. Public speaking, advanced Excel, business writing, coding",
		"What challenges have you encountered in past roles or projects? e.g. Managing deadlines, group conflicts, unclear instructions",
		"Are there any habits or behaviors that may hinder your performance? e.g. Procrastination, overthinking, perfectionism, multitasking",
		"How do you typically respond to feedback or criticism? e.g. Defensive at first, reflective, open to learn, need time to process",
		"Any other areas you wish to address?",
	},
	CategoryOpportunities: {
		"What industry trends or developments excite you? e.g. AI in business, green tech, smart cities, digital health",
		"Are there upcoming projects, events, or networking opportunities you can leverage? e.g. Career fair, hackathon, alumni meetup, internship program",
		"What educational resources or mentorship programs are available to you? e.g. Online courses, university workshops, YouthToPro mentorship",
		"How can you align your strengths with emerging opportunities? e.g. Use data skills in sustainability, apply leadership in student orgs",
		"Any other areas you wish to address?",
	},
	CategoryThreats: {
		"What external factors could impact your career goals? e.g. Economic downturn, visa restrictions, political instability",
		"Are there changes in the job market or industry you're concerned about? e.g. Automation, AI replacing jobs, fewer entry-level roles",
		"Do you foresee any personal limitations or obligations affecting your progress? e.g. Family responsibilities, financial constraints, relocation limits",
		"How might competition affect your chances of success? e.g. High number of qualified applicants, limited roles, prestige bias",
		"Any other areas you wish to address?",
	},
}

// QuestionsFor returns the ordered question list for a category.
//
// When the structure has an entry for the category, the generated items are
// returned with the category's trailing open-ended question appended. The
// static default list already ends in an open-ended prompt, so nothing is
// appended in the fallback case. The last item of the returned list is always
// the optional trailing question.
func QuestionsFor(c Category, structure Structure) []QuestionItem {
	if items, ok := structure[c]; ok && len(items) > 0 {
		out := make([]QuestionItem, 0, len(items)+1)
		out = append(out, items...)
		out = append(out, QuestionItem{Question: c.TrailingQuestion()})
		return out
	}

	defaults := staticQuestions[c]
	out := make([]QuestionItem, len(defaults))
	for i, q := range defaults {
		out[i] = QuestionItem{Question: q}
	}
	return out
}
