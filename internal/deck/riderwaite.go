package deck

// DefaultID is the identifier of the built-in Rider–Waite–Smith deck
const DefaultID = "riderWaite"

// riderWaite is the built-in deck definition. Image files are Wikimedia
// Commons file names resolved through the Special:FilePath redirector.
var riderWaite = Definition{
	Deck: DeckSection{
		ID:          DefaultID,
		Name:        "Rider–Waite (RWS)",
		Version:     "1.0",
		Author:      "Pamela Colman Smith, Arthur Edward Waite",
		Description: "The 1909 Rider–Waite–Smith tarot, public domain scans from Wikimedia Commons.",
	},
	MajorArcana: []MajorEntry{
		{No: "00", Name: "The Fool", File: "RWS_Tarot_00_Fool.jpg", Meaning: "Beginnings, openness, leap of faith"},
		{No: "01", Name: "The Magician", File: "RWS_Tarot_01_Magician.jpg", Meaning: "Willpower, skill, making it real"},
		{No: "02", Name: "The High Priestess", File: "RWS_Tarot_02_High_Priestess.jpg", Meaning: "Intuition, inner knowing, mystery"},
		{No: "03", Name: "The Empress", File: "RWS_Tarot_03_Empress.jpg", Meaning: "Nurture, abundance, growth"},
		{No: "04", Name: "The Emperor", File: "RWS_Tarot_04_Emperor.jpg", Meaning: "Structure, authority, stability"},
		{No: "05", Name: "The Hierophant", File: "RWS_Tarot_05_Hierophant.jpg", Meaning: "Tradition, learning, guidance"},
		{No: "06", Name: "The Lovers", File: "RWS_Tarot_06_Lovers.jpg", Meaning: "Union, values, choice"},
		{No: "07", Name: "The Chariot", File: "RWS_Tarot_07_Chariot.jpg", Meaning: "Drive, control, forward motion"},
		{No: "08", Name: "Strength", File: "RWS_Tarot_08_Strength.jpg", Meaning: "Courage, patience, inner power"},
		{No: "09", Name: "The Hermit", File: "RWS_Tarot_09_Hermit.jpg", Meaning: "Solitude, insight, guidance"},
		{No: "10", Name: "Wheel of Fortune", File: "RWS_Tarot_10_Wheel_of_Fortune.jpg", Meaning: "Cycles, fate, change"},
		{No: "11", Name: "Justice", File: "RWS_Tarot_11_Justice.jpg", Meaning: "Fairness, truth, consequences"},
		{No: "12", Name: "The Hanged Man", File: "RWS_Tarot_12_Hanged_Man.jpg", Meaning: "Pause, surrender, new perspective"},
		{No: "13", Name: "Death", File: "RWS_Tarot_13_Death.jpg", Meaning: "Endings, transformation, release"},
		{No: "14", Name: "Temperance", File: "RWS_Tarot_14_Temperance.jpg", Meaning: "Balance, blending, moderation"},
		{No: "15", Name: "The Devil", File: "RWS_Tarot_15_Devil.jpg", Meaning: "Attachment, shadow, temptation"},
		{No: "16", Name: "The Tower", File: "RWS_Tarot_16_Tower.jpg", Meaning: "Shock, upheaval, truth revealed"},
		{No: "17", Name: "The Star", File: "RWS_Tarot_17_Star.jpg", Meaning: "Hope, renewal, guidance"},
		{No: "18", Name: "The Moon", File: "RWS_Tarot_18_Moon.jpg", Meaning: "Uncertainty, dreams, intuition"},
		{No: "19", Name: "The Sun", File: "RWS_Tarot_19_Sun.jpg", Meaning: "Joy, clarity, success"},
		{No: "20", Name: "Judgement", File: "RWS_Tarot_20_Judgement.jpg", Meaning: "Awakening, reckoning, renewal"},
		{No: "21", Name: "The World", File: "RWS_Tarot_21_World.jpg", Meaning: "Completion, integration, wholeness"},
	},
	MinorArcana: map[string]SuitSection{
		"Wands": {
			Prefix:  "Wands",
			Meaning: "Drive, action, creativity",
			Cards: []MinorEntry{
				{N: "01", Name: "Ace of Wands", Meaning: "Spark, inspiration, new energy"},
				{N: "02", Name: "Two of Wands", Meaning: "Planning, options, looking ahead"},
				{N: "03", Name: "Three of Wands", Meaning: "Expansion, progress, momentum"},
				{N: "04", Name: "Four of Wands", Meaning: "Stability, celebration, home base"},
				{N: "05", Name: "Five of Wands", Meaning: "Friction, competition, testing"},
				{N: "06", Name: "Six of Wands", Meaning: "Recognition, win, confidence"},
				{N: "07", Name: "Seven of Wands", Meaning: "Defense, conviction, holding ground"},
				{N: "08", Name: "Eight of Wands", Meaning: "Speed, messages, movement"},
				{N: "09", Name: "Nine of Wands", Meaning: "Resilience, persistence, guarded", File: "Tarot_Nine_of_Wands.jpg"},
				{N: "10", Name: "Ten of Wands", Meaning: "Burden, responsibility, strain"},
				{N: "11", Name: "Page of Wands", Meaning: "Curiosity, bold start, exploration"},
				{N: "12", Name: "Knight of Wands", Meaning: "Action, passion, impulsive push"},
				{N: "13", Name: "Queen of Wands", Meaning: "Confidence, warmth, magnetism"},
				{N: "14", Name: "King of Wands", Meaning: "Leadership, vision, command"},
			},
		},
		"Cups": {
			Prefix:  "Cups",
			Meaning: "Emotion, relationships, intuition",
			Cards: []MinorEntry{
				{N: "01", Name: "Ace of Cups", Meaning: "New feeling, love, emotional opening"},
				{N: "02", Name: "Two of Cups", Meaning: "Partnership, mutual bond, attraction"},
				{N: "03", Name: "Three of Cups", Meaning: "Friendship, community, celebration"},
				{N: "04", Name: "Four of Cups", Meaning: "Apathy, withdrawal, reevaluation"},
				{N: "05", Name: "Five of Cups", Meaning: "Loss, regret, what remains"},
				{N: "06", Name: "Six of Cups", Meaning: "Nostalgia, innocence, memory"},
				{N: "07", Name: "Seven of Cups", Meaning: "Choices, illusion, daydreams"},
				{N: "08", Name: "Eight of Cups", Meaning: "Walking away, seeking more, release"},
				{N: "09", Name: "Nine of Cups", Meaning: "Contentment, wishes, satisfaction"},
				{N: "10", Name: "Ten of Cups", Meaning: "Harmony, family, fulfillment"},
				{N: "11", Name: "Page of Cups", Meaning: "Tender message, creativity, surprise"},
				{N: "12", Name: "Knight of Cups", Meaning: "Romance, idealism, following the heart"},
				{N: "13", Name: "Queen of Cups", Meaning: "Empathy, compassion, intuition"},
				{N: "14", Name: "King of Cups", Meaning: "Emotional balance, calm, diplomacy"},
			},
		},
		"Swords": {
			Prefix:  "Swords",
			Meaning: "Thought, truth, conflict",
			Cards: []MinorEntry{
				{N: "01", Name: "Ace of Swords", Meaning: "Clarity, breakthrough, truth"},
				{N: "02", Name: "Two of Swords", Meaning: "Indecision, stalemate, avoidance"},
				{N: "03", Name: "Three of Swords", Meaning: "Heartbreak, grief, painful truth"},
				{N: "04", Name: "Four of Swords", Meaning: "Rest, recovery, contemplation"},
				{N: "05", Name: "Five of Swords", Meaning: "Conflict, hollow victory, ego"},
				{N: "06", Name: "Six of Swords", Meaning: "Transition, moving on, calmer waters"},
				{N: "07", Name: "Seven of Swords", Meaning: "Strategy, secrecy, evasion"},
				{N: "08", Name: "Eight of Swords", Meaning: "Restriction, fear, self-imposed limits"},
				{N: "09", Name: "Nine of Swords", Meaning: "Anxiety, worry, sleepless nights"},
				{N: "10", Name: "Ten of Swords", Meaning: "Ending, rock bottom, release"},
				{N: "11", Name: "Page of Swords", Meaning: "Curiosity, vigilance, honest questions"},
				{N: "12", Name: "Knight of Swords", Meaning: "Haste, ambition, blunt action"},
				{N: "13", Name: "Queen of Swords", Meaning: "Discernment, boundaries, clear speech"},
				{N: "14", Name: "King of Swords", Meaning: "Intellect, authority, fairness"},
			},
		},
		"Pentacles": {
			Prefix:  "Pents",
			Meaning: "Work, resources, the material world",
			Cards: []MinorEntry{
				{N: "01", Name: "Ace of Pentacles", Meaning: "Opportunity, prosperity, new venture"},
				{N: "02", Name: "Two of Pentacles", Meaning: "Balance, adaptability, juggling"},
				{N: "03", Name: "Three of Pentacles", Meaning: "Teamwork, craft, collaboration"},
				{N: "04", Name: "Four of Pentacles", Meaning: "Security, control, holding on"},
				{N: "05", Name: "Five of Pentacles", Meaning: "Hardship, isolation, asking for help"},
				{N: "06", Name: "Six of Pentacles", Meaning: "Generosity, giving, receiving"},
				{N: "07", Name: "Seven of Pentacles", Meaning: "Patience, investment, long view"},
				{N: "08", Name: "Eight of Pentacles", Meaning: "Diligence, practice, mastery"},
				{N: "09", Name: "Nine of Pentacles", Meaning: "Independence, self-sufficiency, comfort"},
				{N: "10", Name: "Ten of Pentacles", Meaning: "Legacy, family, lasting wealth"},
				{N: "11", Name: "Page of Pentacles", Meaning: "Study, practical start, ambition"},
				{N: "12", Name: "Knight of Pentacles", Meaning: "Routine, reliability, steady progress"},
				{N: "13", Name: "Queen of Pentacles", Meaning: "Nurture, practicality, abundance"},
				{N: "14", Name: "King of Pentacles", Meaning: "Stewardship, security, wise leadership"},
			},
		},
	},
}
