package domain

// Archetype is an entry in the educational catalog. The catalog is static
// reference content, served publicly; the free-text archetype labels on users
// and journals are not constrained to it.
type Archetype struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Quote       string   `json:"quote"`
	Examples    string   `json:"examples"`
}

// Archetypes returns the twelve-archetype catalog.
func Archetypes() []Archetype {
	return archetypeCatalog
}

var archetypeCatalog = []Archetype{
	{
		ID:          "seeker",
		Name:        "Seeker",
		Description: "The Seeker is driven by a quest for deeper meaning and truth.",
		Traits:      []string{"Independent", "Adventurous", "Authentic", "Restless", "Ambitious"},
		Quote:       "Not all who wander are lost.",
		Examples:    "Odysseus, Amelia Earhart, Indiana Jones",
	},
	{
		ID:          "innocent",
		Name:        "Innocent",
		Description: "The Innocent embodies optimism, goodness, and a pure heart.",
		Traits:      []string{"Optimistic", "Pure", "Trusting", "Faithful", "Naive"},
		Quote:       "There's no place like home.",
		Examples:    "Dorothy from The Wizard of Oz, Forrest Gump, Snow White",
	},
	{
		ID:          "orphan",
		Name:        "Orphan",
		Description: "The Orphan seeks belonging and connection after experiencing abandonment.",
		Traits:      []string{"Realistic", "Empathetic", "Resilient", "Interdependent", "Pragmatic"},
		Quote:       "We're all in this together.",
		Examples:    "Oliver Twist, Harry Potter, Jane Eyre",
	},
	{
		ID:          "fool",
		Name:        "Fool (Jester)",
		Description: "The Fool brings joy, humor, and a fresh perspective to life.",
		Traits:      []string{"Playful", "Spontaneous", "Humorous", "Irreverent", "Present"},
		Quote:       "Life is too important to be taken seriously.",
		Examples:    "Charlie Chaplin, Robin Williams, Puck from A Midsummer Night's Dream",
	},
	{
		ID:          "sage",
		Name:        "Sage (Senex)",
		Description: "The Sage seeks wisdom and truth through knowledge and reflection.",
		Traits:      []string{"Wise", "Knowledgeable", "Thoughtful", "Objective", "Reflective"},
		Quote:       "The unexamined life is not worth living.",
		Examples:    "Socrates, Gandalf, Yoda",
	},
	{
		ID:          "king",
		Name:        "King",
		Description: "The King embodies leadership, order, and the responsible use of power.",
		Traits:      []string{"Authoritative", "Responsible", "Orderly", "Generous", "Protective"},
		Quote:       "With great power comes great responsibility.",
		Examples:    "King Solomon, Aragorn from Lord of the Rings, T'Challa (Black Panther)",
	},
	{
		ID:          "creator",
		Name:        "Creator",
		Description: "The Creator brings new ideas and visions into reality through innovation.",
		Traits:      []string{"Imaginative", "Innovative", "Expressive", "Authentic", "Visionary"},
		Quote:       "To create is to live twice.",
		Examples:    "Leonardo da Vinci, Frida Kahlo, Steve Jobs",
	},
	{
		ID:          "rebel",
		Name:        "Rebel (Destroyer)",
		Description: "The Rebel challenges the status quo and breaks down outdated structures.",
		Traits:      []string{"Revolutionary", "Courageous", "Authentic", "Disruptive", "Independent"},
		Quote:       "Rules are meant to be broken.",
		Examples:    "Prometheus, Malcolm X, Katniss Everdeen",
	},
	{
		ID:          "magician",
		Name:        "Magician",
		Description: "The Magician transforms reality through knowledge and connection to higher laws.",
		Traits:      []string{"Transformative", "Insightful", "Powerful", "Visionary", "Catalytic"},
		Quote:       "As above, so below.",
		Examples:    "Merlin, Marie Curie, Nikola Tesla",
	},
	{
		ID:          "caregiver",
		Name:        "Caregiver",
		Description: "The Caregiver nurtures others with compassion and selfless generosity.",
		Traits:      []string{"Compassionate", "Nurturing", "Generous", "Protective", "Empathetic"},
		Quote:       "Love begins by taking care of the closest ones - the ones at home.",
		Examples:    "Mother Teresa, Florence Nightingale, Mrs. Weasley from Harry Potter",
	},
	{
		ID:          "lover",
		Name:        "Lover",
		Description: "The Lover seeks connection, passion, and deep appreciation of beauty.",
		Traits:      []string{"Passionate", "Committed", "Appreciative", "Sensual", "Emotional"},
		Quote:       "Life without love is like a tree without blossoms or fruit.",
		Examples:    "Romeo and Juliet, Aphrodite, Pablo Neruda",
	},
	{
		ID:          "warrior",
		Name:        "Warrior",
		Description: "The Warrior fights for what matters with courage and discipline.",
		Traits:      []string{"Courageous", "Disciplined", "Skilled", "Protective", "Determined"},
		Quote:       "Courage is not the absence of fear, but the triumph over it.",
		Examples:    "Achilles, Joan of Arc, Mulan",
	},
}
