// Package catalog holds the quiz catalog: the fixed, ordered set of quizzes
// a trainee must complete in one training cycle. Quizzes are immutable once
// loaded into a session.
package catalog

// Question is a single multiple-choice question.
type Question struct {
	ID            int      `json:"id"`
	Category      string   `json:"category"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Quiz is an ordered sequence of questions on one topic.
type Quiz struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Find returns the quiz with the given id, or nil.
func Find(quizzes []Quiz, id string) *Quiz {
	for i := range quizzes {
		if quizzes[i].ID == id {
			return &quizzes[i]
		}
	}
	return nil
}

// Default returns the built-in training catalog.
func Default() []Quiz {
	return []Quiz{
		{
			ID:   "password_security",
			Name: "Password Security",
			Questions: []Question{
				{
					ID:       1,
					Category: "Password Security",
					Question: "What is the primary purpose of Multi-Factor Authentication (MFA)?",
					Options: []string{
						"To make passwords longer",
						"To add an extra layer of security beyond just a password",
						"To share your account with a colleague safely",
						"To automatically change your password every month",
					},
					CorrectAnswer: "To add an extra layer of security beyond just a password",
				},
				{
					ID:       2,
					Category: "Password Security",
					Question: "Which of these is the strongest password?",
					Options: []string{
						"Password123!",
						"MyDogFido2024",
						"R#8k&Zp@w!q2v$J9",
						"qwertyuiop",
					},
					CorrectAnswer: "R#8k&Zp@w!q2v$J9",
				},
				{
					ID:       3,
					Category: "Password Security",
					Question: "An individual calls you claiming to be from IT support and asks for your password to fix an issue. How should you respond?",
					Options: []string{
						"Provide your password, as they are from IT",
						"Ask them for their name and employee ID first",
						"Refuse the request and report the call to the official IT department using a known number",
						"Give them a temporary password",
					},
					CorrectAnswer: "Refuse the request and report the call to the official IT department using a known number",
				},
			},
		},
		{
			ID:   "data_protection",
			Name: "Data Protection",
			Questions: []Question{
				{
					ID:       4,
					Category: "Data Protection",
					Question: "Where should you store confidential company files?",
					Options: []string{
						"On your personal Google Drive",
						"In your email drafts folder",
						"In company-approved cloud storage or network drives",
						"On a USB stick you keep on your desk",
					},
					CorrectAnswer: "In company-approved cloud storage or network drives",
				},
				{
					ID:       5,
					Category: "Data Protection",
					Question: "What does a 'clean desk policy' primarily help prevent?",
					Options: []string{
						"Making the office look messy",
						"Losing your coffee mug",
						"Unauthorized access to sensitive information left on a desk",
						"Forgetting your tasks for the day",
					},
					CorrectAnswer: "Unauthorized access to sensitive information left on a desk",
				},
				{
					ID:       6,
					Category: "Data Protection",
					Question: "Why is it risky to use public Wi-Fi without a VPN for work?",
					Options: []string{
						"It can be slow and unreliable",
						"Attackers on the same network can intercept your data",
						"It uses up your mobile data plan",
						"It is always safe if the Wi-Fi has a password",
					},
					CorrectAnswer: "Attackers on the same network can intercept your data",
				},
			},
		},
		{
			ID:   "product_knowledge",
			Name: "Product Knowledge",
			Questions: []Question{
				{
					ID:       7,
					Category: "Product Knowledge",
					Question: "What is the core function of our 'SecureFlow' VPN product?",
					Options: []string{
						"To block all incoming emails",
						"To create a secure, encrypted connection to the company network",
						"To automatically back up all files to the cloud",
						"To monitor employee productivity",
					},
					CorrectAnswer: "To create a secure, encrypted connection to the company network",
				},
				{
					ID:       8,
					Category: "Product Knowledge",
					Question: "Which feature of 'DataGuard' software helps prevent unauthorized data sharing?",
					Options: []string{
						"File compression",
						"Spell check",
						"Data Loss Prevention (DLP) policies",
						"Customizable color themes",
					},
					CorrectAnswer: "Data Loss Prevention (DLP) policies",
				},
				{
					ID:       9,
					Category: "Product Knowledge",
					Question: "A client reports a suspected phishing email. Which product should they use to analyze and report it?",
					Options: []string{
						"SecureFlow VPN",
						"PhishFinder AI",
						"DataGuard",
						"PasswordVault",
					},
					CorrectAnswer: "PhishFinder AI",
				},
			},
		},
	}
}
