package sixdegrees

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// returns names of all variables
func getAllVars(data string) []string {
	values := []string{}
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// validateTemplate compiles a report template and rejects placeholders
// that are not report fields
func validateTemplate(template string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	unknown := []string{}
	for _, v := range sliceutil.Dedupe(getAllVars(template)) {
		if !sliceutil.Contains(ReportFields, v) {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		return errorutil.NewWithTag("sixdegrees", "unknown report placeholders `%v`", strings.Join(unknown, ","))
	}
	return nil
}

// checkMissing checks if all variables/placeholders are successfully replaced
// if not error is thrown with description
func checkMissing(template string, data map[string]interface{}) error {
	got := Replace(template, data)
	if res := varRegex.FindAllString(got, -1); len(res) > 0 {
		return fmt.Errorf("values of `%v` variables not found", strings.Join(res, ","))
	}
	return nil
}
