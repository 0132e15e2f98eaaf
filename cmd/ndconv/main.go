// Command ndconv converts quantities between units and evaluates exact
// 64-bit rational arithmetic from the command line.
//
//	ndconv convert 2 m mm            # 2000 mm
//	ndconv convert --affine 212 °F °C
//	ndconv units
//	ndconv ratio 1000/3 --pow 2
//
// Every flag can also be set through an NDCONV_* environment variable,
// e.g. NDCONV_LOG_LEVEL=debug.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout, logrus.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
