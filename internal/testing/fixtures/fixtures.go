package fixtures

// SeedActivityCount is the number of activities in the embedded catalog.
const SeedActivityCount = 9

// EmailDomain is the school mail domain every seeded participant uses.
const EmailDomain = "mergington.edu"

// Email builds a school address for the given mailbox name.
func Email(user string) string {
	return user + "@" + EmailDomain
}

// SeedActivityNames returns the names of every seeded activity.
func SeedActivityNames() []string {
	return []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Soccer Club",
		"Basketball Team",
		"Art Club",
		"Drama Club",
		"Math Club",
		"Debate Team",
	}
}

// SeedRoster returns the seeded participant emails for one activity, in
// catalog order. Unknown activities return nil.
func SeedRoster(activity string) []string {
	rosters := map[string][]string{
		"Chess Club":        {Email("michael"), Email("daniel")},
		"Programming Class": {Email("emma"), Email("sophia")},
		"Gym Class":         {Email("john"), Email("olivia")},
		"Soccer Club":       {Email("liam"), Email("noah")},
		"Basketball Team":   {Email("ava"), Email("mia")},
		"Art Club":          {Email("amelia"), Email("harper")},
		"Drama Club":        {Email("ella"), Email("scarlett")},
		"Math Club":         {Email("james"), Email("benjamin")},
		"Debate Team":       {Email("charlotte"), Email("henry")},
	}
	return rosters[activity]
}
