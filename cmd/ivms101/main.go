package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/21Analytics/ivms101"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "ivms101 CLI\n\nUsage:\n  ivms101 validate [-format json|yaml|auto] file\n  ivms101 inspect [-format json|yaml|auto] file\n\nNotes:\n  - validate decodes the message and checks the IVMS101 business rules.\n  - inspect prints a short summary of the decoded message.")
}

func validateCmd(args []string) {
	msg := loadMessage(args, "validate")
	if err := msg.Validate(); err != nil {
		fatalf("invalid message: %v", err)
	}
	fmt.Println("ok")
}

func inspectCmd(args []string) {
	msg := loadMessage(args, "inspect")
	if o := msg.Originator; o != nil {
		printPerson("originator", o.Person())
	}
	if b := msg.Beneficiary; b != nil {
		printPerson("beneficiary", b.BeneficiaryPersons.First())
	}
	if v := msg.OriginatingVASP; v != nil {
		printPerson("originating VASP", v.Person)
	}
	if v := msg.BeneficiaryVASP; v != nil && v.Person != nil {
		printPerson("beneficiary VASP", *v.Person)
	}
}

func printPerson(role string, p ivms101.Person) {
	name := p.LastName()
	if first, ok := p.FirstName(); ok {
		name = first + " " + name
	}
	fmt.Printf("%s: %s\n", role, name)
	if addr, ok := p.Address(); ok {
		fmt.Printf("  address: %s\n", addr)
	}
	if id, ok := p.CustomerIdentification(); ok {
		fmt.Printf("  customer id: %s\n", id)
	}
	if l, err := p.LEI(); err == nil && l != "" {
		fmt.Printf("  LEI: %s\n", l)
	}
}

func loadMessage(args []string, sub string) *ivms101.Message {
	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "auto", "input format: json, yaml or auto (by file extension)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("read %s: %v", path, err)
	}
	if format == "auto" {
		if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
			format = "yaml"
		} else {
			format = "json"
		}
	}
	if format == "yaml" {
		// Rebuild as JSON so both formats share one strict schema path.
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			fatalf("parse %s: %v", path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			fatalf("parse %s: %v", path, err)
		}
	}
	msg, err := ivms101.DecodeMessage(data)
	if err != nil {
		fatalf("decode %s: %v", path, err)
	}
	return msg
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
