package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// summaryTypeName tags a nonce entry in an Inspect dump.
const summaryTypeName = "TxpoolInspectSummary"

// addressLineRe matches an address block opener: 40 hex characters followed
// by ": {".
var addressLineRe = regexp.MustCompile(fmt.Sprintf(`^([0-9a-fA-F]{%d}): \{$`, 2*common.AddressLength))

// numericFields are the unsigned integer summary fields. A value that fails
// to parse silently omits the field rather than erroring.
var numericFields = []string{"value", "gas", "gas_price"}

// translateInspect runs the line-oriented state machine over an Inspect dump.
//
// The machine tracks the current address and nonce; a line consisting of a
// bare "}" or "}," pops one level regardless of the actual nesting depth in
// the source. This is intentional: the known dump shape never nests beyond
// two levels, and deeper dumps desynchronize rather than error.
func translateInspect(raw string) map[string]interface{} {
	pending := make(map[string]interface{})

	var currentAddr, currentNonce string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip blanks and the dump's leading label line.
		if trimmed == "" || strings.HasPrefix(trimmed, inspectMarker) {
			continue
		}

		if m := addressLineRe.FindStringSubmatch(trimmed); m != nil {
			currentAddr = "0x" + m[1]
			if _, ok := pending[currentAddr]; !ok {
				pending[currentAddr] = map[string]interface{}{}
			}
			continue
		}

		if rest, ok := strings.CutSuffix(trimmed, ": "+summaryTypeName+" {"); ok {
			if currentAddr != "" {
				currentNonce = strings.Trim(rest, `"`)
				pending[currentAddr].(map[string]interface{})[currentNonce] = map[string]interface{}{}
			}
			continue
		}

		if trimmed == "}" || trimmed == "}," {
			switch {
			case currentNonce != "":
				currentNonce = ""
			case currentAddr != "":
				currentAddr = ""
			}
			continue
		}

		if currentAddr == "" || currentNonce == "" {
			continue
		}
		addrEntry, ok := pending[currentAddr].(map[string]interface{})
		if !ok {
			continue
		}
		entry, ok := addrEntry[currentNonce].(map[string]interface{})
		if !ok {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "to: Some("):
			to := strings.TrimPrefix(trimmed, "to: Some(")
			to = strings.TrimRight(strings.TrimSpace(to), ",)")
			entry["to"] = "0x" + to
		case trimmed == "to: None,":
			entry["to"] = nil
		default:
			for _, f := range numericFields {
				rest, ok := strings.CutPrefix(trimmed, f+": ")
				if !ok {
					continue
				}
				if n, err := strconv.ParseUint(strings.Trim(rest, ","), 10, 64); err == nil {
					entry[f] = n
				}
				break
			}
		}
	}

	return map[string]interface{}{"pending": pending}
}
