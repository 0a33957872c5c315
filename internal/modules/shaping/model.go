// README: Result shaper model types and locale phrases.
package shaping

// DisplayEvent is one event as the chat client renders it.
type DisplayEvent struct {
	ID           string `json:"id"`
	Titel        string `json:"titel"`
	Datum        string `json:"datum"`
	Tijd         string `json:"tijd"`
	Venue        string `json:"venue"`
	Stad         string `json:"stad"`
	Beschrijving string `json:"beschrijving"`
}

// Reply is the shaped result of one turn: narrative intro, the events to
// display, narrative outro, and the total match count independent of the
// display cap.
type Reply struct {
	Intro      string         `json:"intro"`
	Events     []DisplayEvent `json:"events"`
	Outro      string         `json:"outro"`
	TotalCount int            `json:"totalCount"`
}

// Phrases is the single source of truth for every user-facing string the
// shaper produces. Another locale swaps this struct, not the rules.
type Phrases struct {
	// NothingFound opens the zero-result branch.
	NothingFound string
	// BroadenOffer opens the relax-suggestion list; the dimension lines
	// below are appended for filters that were actually set.
	BroadenOffer    string
	BroadenTime     string // takes the requested time-of-day
	BroadenVenue    string // takes the requested venue
	BroadenCity     string // takes the requested city
	BroadenGeneric  string // used when no dimension was set
	BroadenQuestion string

	// FoundOne and FoundMany open the listable branch (n == 1 / n > 1).
	FoundOne  string
	FoundMany string // takes n
	// TicketOutro closes the listable branch.
	TicketOutro string

	// TooMany opens the over-limit branch.
	TooMany string // takes n
	// NarrowOutro closes the over-limit branch; it never mentions tickets.
	NarrowOutro string

	// TimeUnknown replaces a literal midnight showtime.
	TimeUnknown string

	// Apology is the generic degraded-turn reply, used by callers of the
	// shaper for upstream failures.
	Apology string
	// Rephrase is sent when the extractor produced nothing parseable.
	Rephrase string
	// NeedFilter is sent when no search dimension could be resolved.
	NeedFilter string
	// ToolsUnavailable is sent when the tool catalog is empty.
	ToolsUnavailable string
}

// DutchPhrases are the production strings, ported from the reference
// assistant's wording.
func DutchPhrases() Phrases {
	return Phrases{
		NothingFound:    "Ik kan helaas niks vinden met deze specifieke zoekopdracht.",
		BroadenOffer:    "Zal ik wat ruimer zoeken? Ik kan kijken naar:",
		BroadenTime:     "andere tijdstippen dan %s",
		BroadenVenue:    "andere locaties dan %s",
		BroadenCity:     "andere steden dan %s in de buurt",
		BroadenGeneric:  "andere datums of andere steden",
		BroadenQuestion: "Wat heeft je voorkeur?",

		FoundOne:    "Ik heb 1 optie voor je gevonden:",
		FoundMany:   "Ik heb %d opties voor je gevonden:",
		TicketOutro: "Laat me weten naar welk evenement je wilt en hoeveel tickets je nodig hebt, dan regel ik dat direct voor je.",

		TooMany: "Ik heb %d opties gevonden. Dat zijn er te veel om overzichtelijk te tonen. Zal ik het overzichtelijker maken door te filteren?",
		NarrowOutro: "Heb je een voorkeur voor: een specifieke artiest of voorstelling, " +
			"een bepaalde zaal of locatie, een muziekstijl, " +
			"een tijdstip (ochtend, middag, avond of nacht), of een specifieke dag?",

		TimeUnknown: "tijd nog niet bekend",

		Apology:          "Er ging iets mis. Probeer het opnieuw.",
		Rephrase:         "Ik begreep je vraag niet helemaal. Kun je het anders formuleren?",
		NeedFilter:       "Ik heb iets meer nodig om te kunnen zoeken. Noem een stad, een genre of een podium.",
		ToolsUnavailable: "Sorry, de festival info tools zijn momenteel niet beschikbaar.",
	}
}
