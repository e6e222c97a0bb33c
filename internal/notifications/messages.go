package notifications

import "fmt"

// ExcerptLength is how many characters of a review comment go into a notification.
const ExcerptLength = 50

// Excerpt cuts comment to ExcerptLength characters and marks the cut with "...".
func Excerpt(comment string) string {
	runes := []rune(comment)
	if len(runes) <= ExcerptLength {
		return comment
	}
	return string(runes[:ExcerptLength]) + "..."
}

func ReviewMessage(placeID, comment string) string {
	return fmt.Sprintf("New review for %s: \"%s\"", placeID, Excerpt(comment))
}

func WelcomeMessage(placeID string) string {
	return fmt.Sprintf("You are now subscribed to updates for %s", placeID)
}
