package xmltree

import "github.com/flowbridge/plunet/pkg/soap"

// ResultBase carries the application-level status fields present on
// every parsed response. StatusCode is nil when the response carried
// none at all.
type ResultBase struct {
	StatusCode    *int
	StatusMessage string
}

// OK reports whether the status signals success: code 0, or no code
// with an "OK" (or absent) message.
func (b ResultBase) OK() bool {
	if b.StatusCode != nil {
		return *b.StatusCode == 0
	}
	return b.StatusMessage == "" || b.StatusMessage == "OK"
}

// ExtractResultBase locates the first statusCode/statusMessage tags
// anywhere in the tree. The remote system nests them at varying
// depths, so the search is not anchored.
func ExtractResultBase(t Tree) ResultBase {
	var base ResultBase
	if v, ok := t.Find("statusCode"); ok {
		if n, numOK := Int(v); numOK {
			base.StatusCode = &n
		}
	}
	if v, ok := t.Find("statusMessage"); ok {
		if s, textOK := Text(v); textOK {
			base.StatusMessage = s
		}
	}
	return base
}

// FindFault locates a SOAP Fault element in the tree and extracts its
// code and message. Because Parse strips namespace prefixes, both the
// modern soap:Fault and the legacy unprefixed Fault land under the
// same key; the SOAP 1.2 Code/Reason shape is handled as a fallback.
func FindFault(t Tree) (*soap.Fault, bool) {
	v, ok := t.Find("Fault")
	if !ok {
		return nil, false
	}

	ft, isTree := v.(Tree)
	if !isTree {
		if msg, textOK := Text(v); textOK {
			return &soap.Fault{Message: msg}, true
		}
		return &soap.Fault{}, true
	}

	fault := &soap.Fault{}
	if code, codeOK := ft.Text("faultcode"); codeOK {
		fault.Code = code
	}
	if msg, msgOK := ft.Text("faultstring"); msgOK {
		fault.Message = msg
	}
	if detail, detailOK := ft.Text("detail"); detailOK {
		fault.Detail = detail
	}

	// SOAP 1.2 shape: Code/Value and Reason/Text.
	if fault.Code == "" {
		if codeTree, codeOK := ft.Child("Code"); codeOK {
			if value, valueOK := codeTree.Text("Value"); valueOK {
				fault.Code = value
			}
		}
	}
	if fault.Message == "" {
		if reason, reasonOK := ft.Child("Reason"); reasonOK {
			if text, textOK := reason.Text("Text"); textOK {
				fault.Message = text
			}
		}
	}
	return fault, true
}
