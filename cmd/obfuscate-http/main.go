// Command obfuscate-http masks sensitive request parameters and header values in
// text piped through it, one line at a time. By default every line is treated as
// a key1=value1&key2=value2 parameter string; with -headers every line is treated
// as a single "Name: value" header. The masking rules are read from a YAML file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/robtimus/obfuscation-http/headers"
)

func main() {
	configPath := flag.String("config", "rules.yaml", "path to the YAML rule file")
	headerMode := flag.Bool("headers", false, "treat every line as a 'Name: value' header instead of a parameter string")
	flag.Parse()

	rules, err := loadRules(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	if *headerMode {
		obfuscator, err := rules.headerObfuscator()
		if err != nil {
			log.Fatal(err)
		}
		for scanner.Scan() {
			fmt.Fprintln(out, maskHeaderLine(obfuscator, scanner.Text()))
		}
	} else {
		obfuscator, err := rules.paramObfuscator()
		if err != nil {
			log.Fatal(err)
		}
		for scanner.Scan() {
			masked, err := obfuscator.ObfuscateString(scanner.Text())
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(out, masked)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func maskHeaderLine(obfuscator *headers.Obfuscator, line string) string {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return line
	}
	return name + ": " + obfuscator.ObfuscateHeader(strings.TrimSpace(name), strings.TrimSpace(value))
}
