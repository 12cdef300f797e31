package entities

// Screen identifies which view a client should display
type Screen string

// Screens
const (
	// ScreenNone means the state gives no answer and the client stays put
	ScreenNone              Screen = ""
	ScreenEntry             Screen = "entry"
	ScreenJoin              Screen = "join"
	ScreenSetup             Screen = "setup"
	ScreenCharacterCreation Screen = "character_creation"
	ScreenLobby             Screen = "lobby"
	ScreenGame              Screen = "game"
)
