package detection

// DefaultDisposableDomains returns the built-in throwaway email providers
func DefaultDisposableDomains() []string {
	return []string{
		"mailinator.com",
		"10minutemail.com",
		"guerrillamail.com",
		"trashmail.com",
		"tempmail.com",
		"yopmail.com",
	}
}

// DefaultSpamWords returns the built-in spam phrase catalog. Operators can
// extend it through the spam_words_list setting.
func DefaultSpamWords() []string {
	return []string{
		// Generic marketing
		"buy now", "click here", "limited time", "special offer", "order now", "shop now",
		"free trial", "get started", "try now", "subscribe now", "instant access",
		"act now", "save big", "don’t miss out", "sign up", "join now",

		// Financial
		"cash", "money back", "100% free", "guaranteed", "no risk", "risk-free", "winner",
		"earn", "income", "double your", "investment", "profit", "easy money",
		"work from home", "be your own boss",

		// Urgency
		"urgent", "immediately", "limited supply", "only a few left", "while supplies last",
		"today only", "last chance", "final notice",

		// Prizes and incentives
		"bonus", "prize", "free gift", "reward", "giveaway", "claim now", "congratulations",
		"you’ve been selected", "exclusive deal", "you’re a winner",

		// Health and medications
		"weight loss", "miracle", "cure", "anti-aging", "treatment", "pain relief",
		"no prescription", "pharmacy", "viagra", "levitra", "cialis",

		// Scam and phishing indicators
		"dear friend", "confidential", "no obligation", "click below",
		"password", "bank account", "credit card", "ssn", "login", "verify your account",
		"update your information",

		// Adult content
		"xxx", "sex", "nude", "adult", "porn", "escort", "camgirl", "hot girls",
		"dating", "hookup", "live chat", "strip",

		// Shortener domains often seen in spam
		"bit.ly", "tinyurl", "goo.gl", "t.co",

		// Cryptocurrency and high-risk finance
		"bitcoin", "crypto", "blockchain", "forex", "binary options", "nft", "token sale",

		// SEO and web services
		"seo", "backlinks", "traffic", "page rank", "optimize your site", "site audit",
		"web design", "email list", "mailing list", "marketing campaign",

		// Language used by bots
		"great post", "thanks for sharing", "check out my site", "visit my blog",
		"contact me", "looking for friends", "nice article", "helpful info", "i love this",
		"interesting content", "amazing write-up", "follow me",

		// Foreign marketing phrases
		"acheter maintenant", "meilleur prix", "angebot", "jetzt kaufen", "compra ahora",
		"precio bajo",
	}
}
