// ABOUTME: Non-interactive trim and export
// ABOUTME: Cuts [start, end] out of a source file and writes it in one shot
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Resonate-Protocol/trimmer/internal/session"
	"github.com/Resonate-Protocol/trimmer/internal/version"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/codec"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/output"
	flag "github.com/spf13/pflag"
)

var (
	in          = flag.StringP("in", "i", "", "Source audio file")
	out         = flag.StringP("out", "o", "", "Output file (extension selects the format)")
	start       = flag.Float64P("start", "s", 0, "Trim start in seconds")
	end         = flag.Float64P("end", "e", -1, "Trim end in seconds (default: end of source)")
	showVersion = flag.BoolP("version", "v", false, "Print version and exit")
)

func main() {
	flag.Parse()
	log.SetPrefix("[trimmer-export] ")

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	path, err := export(*in, *out, *start, *end)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Wrote %s", path)
}

// export trims src to [start, end] and saves it as dst. A negative end
// keeps everything after start.
func export(src, dst string, start, end float64) (string, error) {
	s, err := session.Open(src, session.Config{
		Registry: codec.Default(),
		Device:   output.NewNull(nil),
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = s.Close() }()

	if start < 0 {
		return "", errors.New("start must not be negative")
	}
	s.SetStart(start)
	if end >= 0 {
		s.SetEnd(end)
	}

	return s.Save(dst)
}
