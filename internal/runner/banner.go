package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
     _     __    __
 ___(_)_ _/ /___/ /__ ___ ________ ___ ___
(_-</ /\ \ / _  / -_) _ '/ __/ -_) -_|_-<
/___/_//_\_\_,_/\__/\_, /_/  \__/\__/___/
                   /___/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
