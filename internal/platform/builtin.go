package platform

// builtin holds the fixed platform table. It is only read through Registry.
var builtin = []Config{
	{
		Key:   Facebook,
		Name:  "Facebook",
		Icon:  "👤",
		Color: "#1877F2",
		Fields: []Field{
			{"text", TextField{Required: true, MaxLength: 63206, Placeholder: "What's on your mind?"}},
			{"image", FileField{Accept: "image/*", Multiple: true, MaxFiles: 10}},
			{"link", TextField{Placeholder: "https://example.com"}},
		},
		Notes: "Text posts can be up to 63,206 characters. Up to 10 images supported.",
	},
	{
		Key:   Instagram,
		Name:  "Instagram",
		Icon:  "📷",
		Color: "#E4405F",
		Fields: []Field{
			{"caption", TextField{MaxLength: 2200, Placeholder: "Write a caption..."}},
			{"image", FileField{Required: true, Accept: "image/*", Multiple: true, MaxFiles: 10}},
			{"hashtags", TextField{MaxLength: 30, Placeholder: "#example #hashtag"}},
		},
		Notes: "Image required. Captions up to 2,200 characters. Max 30 hashtags.",
	},
	{
		Key:   Twitter,
		Name:  "Twitter / X",
		Icon:  "🐦",
		Color: "#1DA1F2",
		Fields: []Field{
			{"text", TextField{Required: true, MaxLength: 280, Placeholder: "What's happening?"}},
			{"image", FileField{Accept: "image/*", Multiple: true, MaxFiles: 4}},
			{"thread", BooleanField{Label: "Post as thread"}},
		},
		Notes: "Max 280 characters per tweet. Up to 4 images. Thread option for longer posts.",
	},
	{
		Key:   Threads,
		Name:  "Threads",
		Icon:  "🧵",
		Color: "#000000",
		Fields: []Field{
			{"text", TextField{Required: true, MaxLength: 500, Placeholder: "Start a thread..."}},
			{"image", FileField{Accept: "image/*", Multiple: true, MaxFiles: 10}},
		},
		Notes: "Max 500 characters. Up to 10 images supported.",
	},
	{
		Key:   Bluesky,
		Name:  "BlueSky",
		Icon:  "🦋",
		Color: "#0085FF",
		Fields: []Field{
			{"text", TextField{Required: true, MaxLength: 300, Placeholder: "What's up?"}},
			{"image", FileField{Accept: "image/*", Multiple: true, MaxFiles: 4}},
		},
		Notes: "Max 300 characters. Up to 4 images supported.",
	},
	{
		Key:   Reddit,
		Name:  "Reddit",
		Icon:  "🤖",
		Color: "#FF4500",
		Fields: []Field{
			{"title", TextField{Required: true, MaxLength: 300, Placeholder: "An interesting title"}},
			{"text", TextField{MaxLength: 40000, Placeholder: "Text (optional)"}},
			{"subreddit", TextField{Required: true, Placeholder: "r/subreddit"}},
			{"link", TextField{Placeholder: "https://example.com (for link posts)"}},
		},
		Notes: "Title required (max 300 chars). Text up to 40,000 characters. Specify subreddit.",
	},
	{
		Key:   TikTok,
		Name:  "TikTok",
		Icon:  "🎵",
		Color: "#000000",
		Fields: []Field{
			{"caption", TextField{MaxLength: 2200, Placeholder: "Describe your video..."}},
			{"video", FileField{Required: true, Accept: "video/*"}},
			{"hashtags", TextField{Placeholder: "#fyp #trending"}},
		},
		Notes: "Video required. Caption up to 2,200 characters. Hashtags recommended.",
	},
	{
		Key:   Discord,
		Name:  "Discord",
		Icon:  "💬",
		Color: "#5865F2",
		Fields: []Field{
			{"text", TextField{MaxLength: 2000, Placeholder: "Message content"}},
			{"webhookUrl", TextField{Required: true, Placeholder: "https://discord.com/api/webhooks/..."}},
			{"embed", BooleanField{Label: "Use embed"}},
			{"embedTitle", TextField{MaxLength: 256, Placeholder: "Embed title (if using embed)"}},
			{"embedDescription", TextField{MaxLength: 4096, Placeholder: "Embed description (if using embed)"}},
		},
		Notes: "Webhook URL required. Message up to 2,000 chars. Embeds support rich formatting.",
	},
}
