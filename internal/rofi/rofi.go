package rofi

import (
	"fmt"
	"io"
	"os"
)

// IsFirstOpen check if rofi menu was first opened and
// no variant is selected yet.
func IsFirstOpen() bool {
	return os.Getenv("ROFI_RETV") == "0"
}

// IsCustomEntry reports that the user typed text instead of
// choosing one of the listed items.
func IsCustomEntry() bool {
	return os.Getenv("ROFI_RETV") == "2"
}

// YieldItemWithInfo prints menu item with info which can be
// retrieved later with GetInfo
func YieldItemWithInfo(w io.Writer, text string, info string) {
	fmt.Fprintf(w, "%s\x00info\x1f%s\n", text, info)
}

// SetMessage shows msg above the menu items
func SetMessage(w io.Writer, msg string) {
	fmt.Fprintf(w, "\x00message\x1f%s\n", msg)
}

// SetPrompt changes the prompt shown left of the input field
func SetPrompt(w io.Writer, prompt string) {
	fmt.Fprintf(w, "\x00prompt\x1f%s\n", prompt)
}

// GetInfo from chosen menu item
func GetInfo() string {
	return os.Getenv("ROFI_INFO")
}
