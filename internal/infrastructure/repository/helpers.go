package repository

import "strings"

// escapeLike escapes LIKE metacharacters so user input matches literally. The
// escape character is '!' because a backslash inside a quoted ESCAPE clause
// reads differently on MySQL and sqlite; queries using this must carry a
// matching ESCAPE '!' clause.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	s = strings.ReplaceAll(s, "_", "!_")
	return s
}
