package main

import (
	"log"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	p := &Program{}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	p.Run()
	return nil
}
