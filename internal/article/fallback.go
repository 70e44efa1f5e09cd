package article

// Fallback returns the fixed article set shown when the backend is
// unreachable. The articles are deterministic so the feed, filters, and
// reader all behave normally offline.
func Fallback() []Article {
	return []Article{
		{
			Title:    "Protecting Yourself From Phishing Attacks",
			Category: "Social Engineering",
			Icon:     Icon("Social Engineering"),
			URL:      "https://cyberwatch.local/offline/phishing-scam-basics",
			Excerpt:  "Phishing remains the most common way attackers reach individuals. Learn how to spot a fraudulent message before it does any damage.",
			FullContent: "Phishing remains the most common way attackers reach individuals. " +
				"A phishing message imitates a trusted sender to trick you into revealing credentials or installing malware. " +
				"Check the sender address carefully, not just the display name. " +
				"Hover over links before clicking and look for lookalike domains. " +
				"Never enter a password on a page you reached from an unexpected email. " +
				"If a message pressures you to act urgently, slow down - urgency is the attacker's favourite tool. " +
				"Report suspected phishing to your provider so that others are protected too.",
		},
		{
			Title:    "Keeping Your Devices Up To Date",
			Category: "Vulnerabilities",
			Icon:     Icon("Vulnerabilities"),
			URL:      "https://cyberwatch.local/offline/patching-vulnerability-hygiene",
			Excerpt:  "Unpatched software is the easiest door into any home or business. A few minutes of updates closes the holes attackers scan for.",
			FullContent: "Unpatched software is the easiest door into any home or business network. " +
				"Vendors publish fixes for known flaws constantly, and attackers scan for machines that have not applied them. " +
				"Turn on automatic updates for your operating system and browser. " +
				"Do not forget routers, smart TVs and other devices with their own firmware. " +
				"Retire software that no longer receives security fixes. " +
				"A regular restart is often all that is needed to finish applying a pending patch.",
		},
		{
			Title:    "Strong Passwords And Multi-Factor Authentication",
			Category: "Human Security",
			Icon:     Icon("Human Security"),
			URL:      "https://cyberwatch.local/offline/human-factor-passwords",
			Excerpt:  "Password reuse turns one breach into many. A password manager and a second factor stop most account takeover attempts cold.",
			FullContent: "Password reuse turns one breach into many: attackers replay leaked credentials everywhere. " +
				"Use a password manager to generate a unique password for every account. " +
				"Length beats complexity - a long passphrase is stronger than a short scramble. " +
				"Enable multi-factor authentication wherever it is offered, starting with email and banking. " +
				"An authenticator app is stronger than codes sent by text message. " +
				"Check whether your accounts have appeared in known breaches and rotate anything exposed.",
		},
		{
			Title:    "Securing Smart Devices In Your Home",
			Category: "IoT Security",
			Icon:     Icon("IoT Security"),
			URL:      "https://cyberwatch.local/offline/iot-smart-home-security",
			Excerpt:  "Every connected gadget is a small computer on your network. Default passwords and open settings make them easy targets.",
			FullContent: "Every connected gadget is a small computer on your network, and many ship with weak defaults. " +
				"Change the default administrator password on every new device before anything else. " +
				"Put smart home devices on a guest network separated from your laptops and phones. " +
				"Disable remote access features you do not use. " +
				"Check for firmware updates at least a few times a year. " +
				"When a device stops receiving updates, treat it as untrusted.",
		},
	}
}
