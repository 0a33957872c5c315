package ai

import (
	"fmt"
	"strings"
	"time"
)

// extractionPrompt asks for a single JSON object with the filter fields.
// Time-slot heuristics follow typical Dutch concert hours: a bare clock
// hour without context is assumed to be an evening show.
func extractionPrompt(message string, history []Message) string {
	var b strings.Builder

	if len(history) > 0 {
		b.WriteString("Eerdere gespreksbeurten (context, nieuwste laatst):\n")
		for _, m := range history {
			role := "Gebruiker"
			if m.Role != "user" {
				role = "Assistent"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `Analyseer deze vraag: %q

Extract de volgende informatie:
- city: Nederlandse stad naam (Amsterdam, Utrecht, Rotterdam, Den Haag, etc.) of null
- venue: podium/zaal naam (Paradiso, Melkweg, Ziggo Dome, AFAS Live, Carré, etc.) of null
- genre: muziekstijl (rock, pop, jazz, techno, metal, dance, cabaret, comedy, etc.) of null
- timeOfDay: tijd indicatie (ochtend, middag, avond, nacht) of null
- date: NIET INVULLEN, altijd null

TIJDSLOT HERKENNING:
- "vanavond", "'s avonds", "avond" -> "avond"
- "laat", "vannacht", "'s nachts", "na middernacht" -> "nacht"
- "10 uur", "9 uur", "8 uur" (zonder 's ochtends) -> "avond" (typische concerttijden)
- "3 uur", "4 uur", "5 uur" -> "middag" (tenzij context nacht suggereert)
- "overdag", "middag", "'s middags", "lunch" -> "middag"
- ALLEEN bij "ochtend", "'s ochtends", "vroeg", "voor de middag" -> "ochtend"
- "feesten", "stappen", "uitgaan" -> altijd "nacht"
- "festival" zonder tijd -> geen timeOfDay (hele dag)
- Bij twijfel tussen avond en ochtend: kies avond

Stad synoniemen: Mokum, A'dam, 020 = Amsterdam; 010 = Rotterdam; 070 = Den Haag.

Output ALLEEN JSON:
{"city": "...", "venue": "...", "genre": "...", "timeOfDay": "...", "date": null}`, message)

	return b.String()
}

// toolSystemPrompt is the dispatcher instruction for the function-calling
// session. The date context is injected per request so relative words
// resolve against the server's today.
func toolSystemPrompt(today time.Time) string {
	const iso = "2006-01-02"
	tomorrow := today.AddDate(0, 0, 1)

	// Upcoming weekend: friday through sunday, starting from today's week.
	daysUntilFriday := (int(time.Friday) - int(today.Weekday()) + 7) % 7
	friday := today.AddDate(0, 0, daysUntilFriday)
	saturday := friday.AddDate(0, 0, 1)
	sunday := friday.AddDate(0, 0, 2)

	weekdays := []string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"}

	return fmt.Sprintf(`Je bent een professionele Nederlandse festival assistent voor FestivalInfo.nl.

BELANGRIJK: Gebruik ALTIJD de beschikbare festivalinfo tools om events op te zoeken. Zoek NIET online.

## DATUM CONTEXT (vandaag):
- Vandaag: %s (%s)
- Morgen: %s
- Aankomend weekend: vrijdag %s, zaterdag %s, zondag %s

## DATUM HERKENNING:
- "vanavond"/"vandaag"/"straks" -> %s
- "morgen"/"morgenavond" -> %s
- "dit weekend" -> DRIE search_events calls: %s, %s en %s

## FLOW:
1. Gebruiker vraagt naar concerten of festivals
2. Zoek eerst stad of podium met de juiste tool
3. Zoek genre als dat relevant is
4. Haal events op met search_events

## CONTEXT & VERFIJNING:
- Deed de gebruiker net een zoekopdracht met meer dan 20 resultaten en geeft hij nu
  een voorkeur (genre, tijd, locatie)? Verfijn dan de VORIGE zoekopdracht met dat
  extra filter in plaats van opnieuw te beginnen.

## RESPONSE REGELS:
- Meer dan 20 events: noem alleen het aantal, vraag naar een voorkeur (artiest,
  zaal, muziekstijl, tijdstip, dag) en vraag NIET naar tickets.
- 20 of minder events: benoem ze allemaal en vraag hoeveel tickets de gebruiker wil.
- Geen events: zeg dat je niks kon vinden en bied aan breder te zoeken.
- Toon nooit uitverkochte of afgelaste events.

## STIJL:
Nederlands, vriendelijk, professioneel, compacte formatting.`,
		today.Format(iso), weekdays[int(today.Weekday())],
		tomorrow.Format(iso),
		friday.Format(iso), saturday.Format(iso), sunday.Format(iso),
		today.Format(iso),
		tomorrow.Format(iso),
		friday.Format(iso), saturday.Format(iso), sunday.Format(iso))
}
