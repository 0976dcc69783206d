// internal/diag/globals.go
package diag

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
	"github.com/rs/zerolog/log"
)

// HarvestGlobals runs a page's inline scripts in a sandboxed JS VM and
// returns the non-standard globals they leave behind. The results site
// is a Vue SPA; when it renders an empty page, its bootstrap state in
// a global is often the quickest thing to inspect offline.
func HarvestGlobals(htmlContent, pageURL string) map[string]string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		log.Debug().Err(err).Msg("Cannot parse snapshot for globals harvest")
		return nil
	}

	vm := goja.New()

	// Just enough browser environment to let bootstrap assignments run
	vm.Set("window", vm.GlobalObject())
	vm.Set("self", vm.GlobalObject())
	vm.Set("document", map[string]interface{}{
		"location": map[string]interface{}{
			"href": pageURL,
		},
	})
	vm.Set("location", map[string]interface{}{
		"href": pageURL,
	})
	vm.Set("console", map[string]interface{}{
		"log": func(call goja.FunctionCall) goja.Value {
			return nil
		},
		"error": func(call goja.FunctionCall) goja.Value {
			return nil
		},
	})

	doc.Find("script").Each(func(i int, sel *goquery.Selection) {
		if _, external := sel.Attr("src"); external {
			return
		}
		if script := sel.Text(); script != "" {
			// Most scripts fail on the missing DOM; assignments that
			// ran before the failure are still harvested.
			_, _ = vm.RunString(script)
		}
	})

	globals := make(map[string]string)
	for _, key := range vm.GlobalObject().Keys() {
		if isStandardGlobal(key) {
			continue
		}
		val := vm.Get(key)
		if val == nil {
			continue
		}
		if exported := val.Export(); exported != nil {
			globals[key] = fmt.Sprintf("%v", exported)
		}
	}

	return globals
}

func isStandardGlobal(key string) bool {
	standards := map[string]bool{
		"window": true, "self": true, "document": true, "location": true, "console": true,
		"Object": true, "Array": true, "String": true, "Number": true, "Boolean": true,
		"Date": true, "Math": true, "JSON": true, "RegExp": true, "Error": true,
		"Function": true, "parseInt": true, "parseFloat": true, "isNaN": true,
		"isFinite": true, "encodeURI": true, "decodeURI": true, "encodeURIComponent": true,
		"decodeURIComponent": true, "undefined": true, "NaN": true, "Infinity": true,
	}
	return standards[key]
}
