package naming

import "fmt"

// LookupError reports a name request for a key (or key/suffix pair)
// absent from the derived set.
type LookupError struct {
	Key    string
	Suffix string
}

func (e *LookupError) Error() string {
	if e.Suffix != "" {
		return fmt.Sprintf("no name variant for resource type %q with suffix %q", e.Key, e.Suffix)
	}
	return fmt.Sprintf("no name for resource type %q", e.Key)
}

// Is lets errors.Is match any LookupError against ErrUnknownResourceType.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownResourceType
}
