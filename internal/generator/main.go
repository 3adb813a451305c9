package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// reduction polynomial x^8 + x^4 + x^3 + x^2 + 1 and its primitive element.
const (
	modulus   = 0x11D
	generator = 2
)

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-galois")

	cfg := buildTables()

	assertNoError(bgen.Generate(cfg, "gf256", "templates",
		bavard.Entry{
			File:      "../../pkg/galois/gf256/tables.go",
			Templates: []string{"tables.go.tmpl"},
		},
	))

	// run gofmt on the generated output
	runCmd("gofmt", "-w", "../../pkg/galois/gf256")
}

// tableConfig carries the precomputed tables into the template, formatted as
// rows of sixteen hex bytes.
type tableConfig struct {
	ExpRows []string
	LogRows []string
}

func buildTables() tableConfig {
	var (
		exp [256]uint8
		log [256]uint8
		x   = 1
	)
	//
	for i := 0; i < 255; i++ {
		exp[i] = uint8(x)
		log[x] = uint8(i)
		// multiply by the generator (2), reducing on overflow
		x <<= 1
		if x&0x100 != 0 {
			x ^= modulus
		}
	}
	// wrap the final entry back to g^0
	exp[255] = exp[0]
	//
	return tableConfig{ExpRows: formatRows(exp), LogRows: formatRows(log)}
}

func formatRows(table [256]uint8) []string {
	rows := make([]string, 0, 16)
	//
	for i := 0; i < 256; i += 16 {
		cells := make([]string, 16)
		for j := 0; j < 16; j++ {
			cells[j] = fmt.Sprintf("0x%02x", table[i+j])
		}

		rows = append(rows, strings.Join(cells, ", ")+",")
	}
	//
	return rows
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run())
}

func assertNoError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
