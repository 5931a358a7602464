package incident

import (
	"fmt"
	"time"
)

// GenerateTicketCode builds the human-facing ticket code for an incident.
// The middle segment is the company ID, or "GLB" for incidents reported by
// accounts with no company. The trailing segment is the creation time in
// unix seconds; a unique index on the column catches the rare same-second
// collision as a duplicate-key error.
func GenerateTicketCode(companyID uint, now time.Time) string {
	segment := "GLB"
	if companyID != 0 {
		segment = fmt.Sprintf("%d", companyID)
	}
	return fmt.Sprintf("INC-%s-%d", segment, now.Unix())
}
