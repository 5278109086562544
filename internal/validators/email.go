package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain can actually receive
// mail before we store it on a client or send notifications to it.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// some small domains receive mail on an A/AAAA record only
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
