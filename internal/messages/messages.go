// Package messages holds the user-facing notification texts. The strings are
// part of the visible contract and must not be reworded.
package messages

// Notes
const (
	NotesSaved        = "Notities opgeslagen"
	NoteAdded         = "Notitie toegevoegd"
	EnterNote         = "Voer een notitie in"
	NoActiveSession   = "Geen actieve sessie gevonden voor deze datum"
	NoSessionsForDate = "Geen sessies gevonden voor deze datum"
	NoNotes           = "Geen notities"
	NewNotePrompt     = "Voeg een nieuwe notitie toe..."
	AllNotesTitle     = "Alle Notities"
	NotesForTitle     = "Notities voor %s"
)

// Profile
const (
	WageFormat     = "Gebruik een komma voor decimalen (bijv. 12,50)"
	FixWageFirst   = "Corrigeer eerst het uurloon formaat"
	ConfirmChanges = "Weet u zeker dat u deze wijzigingen wilt opslaan?"
	ProfileSaved   = "Profiel instellingen zijn opgeslagen"
	CommunityOn    = "Community functies zijn ingeschakeld. U kunt berichten plaatsen, communiceren met andere gebruikers en media delen."
	CommunityOff   = "Community functies zijn uitgeschakeld. U kunt geen gebruik maken van sociale functies."
	WageHint       = "Dit is uw bruto uurloon voor salaris berekeningen"
)

// Community
const (
	AddTextOrImage = "Voeg tekst of een afbeelding toe"
	ImageTooLarge  = "Afbeelding mag maximaal 5MB zijn"
	PostPlaced     = "Bericht geplaatst"
	PostLiked      = "Bericht geliked"
	EnterComment   = "Voer een reactie in"
	CommentPlaced  = "Reactie geplaatst"
)
