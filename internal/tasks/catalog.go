package tasks

const (
	DailySignIn  = "daily_signin"
	DailyFeed    = "daily_feed"
	DailyPet     = "daily_pet"
	DailyTrain   = "daily_train"
	DailyPlay    = "daily_play"
	WeeklySignIn = "weekly_signin"
	WeeklyFeed   = "weekly_feed"
	PetMaster    = "pet_master"
	FeedMaster   = "feed_master"
	RichCat      = "rich_cat"
	SkilledCat   = "skilled_cat"
	Welcome      = "welcome"
	FirstFeed    = "first_feed"
	FirstToy     = "first_toy"
	MainLevel    = "main_level"
)

func daily(id, name, desc, icon string, max int, r Reward) Definition {
	return Definition{ID: id, Name: name, Description: desc, Icon: icon, Type: TypeDaily, Max: max, Reward: r}
}

func weekly(id, name, desc, icon string, max int, r Reward) Definition {
	return Definition{ID: id, Name: name, Description: desc, Icon: icon, Type: TypeWeekly, Max: max, Reward: r}
}

func achievement(id, name, desc, icon string, max int, r Reward) Definition {
	return Definition{ID: id, Name: name, Description: desc, Icon: icon, Type: TypeAchievement, Max: max, Reward: r}
}

func mainTask(id, name, desc, icon string, max int, r Reward, requires ...string) Definition {
	return Definition{ID: id, Name: name, Description: desc, Icon: icon, Type: TypeMain, Max: max, Reward: r, Requires: requires}
}

// DefaultTasks is the built-in quest list.
func DefaultTasks() []Definition {
	return []Definition{
		daily(DailySignIn, "Daily Sign-in", "Sign in today", "📅", 1, Reward{Coins: 100}),
		daily(DailyFeed, "Feeding Time", "Feed your cats 3 times", "🐟", 3, Reward{Coins: 150, Exp: 30}),
		daily(DailyPet, "Cuddles", "Pet your cats 10 times", "✋", 10, Reward{Coins: 100, Exp: 20}),
		daily(DailyTrain, "Practice", "Train a skill 3 times", "🎯", 3, Reward{Coins: 80, Exp: 20}),
		daily(DailyPlay, "Play Time", "Play with a toy 5 times", "🧶", 5, Reward{Coins: 200, Exp: 40}),

		weekly(WeeklySignIn, "Regular Visitor", "Sign in 7 times this week", "🗓", 7,
			Reward{Coins: 500, Items: []RewardItem{{ItemID: "premium_cat_food", Quantity: 2}}}),
		weekly(WeeklyFeed, "Well Fed", "Feed your cats 20 times this week", "🍱", 20,
			Reward{Coins: 300, Items: []RewardItem{{ItemID: "canned", Quantity: 1}}}),

		achievement(PetMaster, "Pet Master", "Pet your cats 1000 times", "🏅", 1000, Reward{Coins: 1000, Exp: 100}),
		achievement(FeedMaster, "Feeding Expert", "Feed your cats 500 times", "🏆", 500, Reward{Coins: 1500, Exp: 150}),
		achievement(RichCat, "Fat Cat", "Earn 10000 coins in total", "💰", 10000, Reward{Coins: 2000, Exp: 200}),
		achievement(SkilledCat, "Skilled Cat", "Raise any skill to level 5", "⭐", 5,
			Reward{Coins: 500, Items: []RewardItem{{ItemID: "catnip", Quantity: 1}}}),

		mainTask(Welcome, "Welcome Home", "Pet your cat for the first time", "🏠", 1,
			Reward{Coins: 500, Exp: 50}),
		mainTask(FirstFeed, "First Meal", "Feed your cat", "🍽", 1,
			Reward{Coins: 200, Exp: 30, Items: []RewardItem{{ItemID: "yarn_ball", Quantity: 1}}}, Welcome),
		mainTask(FirstToy, "Toy Time", "Play with your cat using a toy", "🎾", 1,
			Reward{Coins: 300, Exp: 40}, FirstFeed),
		mainTask(MainLevel, "All Grown Up", "Raise a cat to level 5", "🐈", 5,
			Reward{Coins: 1000}),
	}
}
