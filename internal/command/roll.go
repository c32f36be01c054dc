package command

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/keshon/commandgate/pkg/cmd"
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-*/])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	validOps   = map[string]bool{"+": true, "-": true, "*": true, "/": true}
)

// maxMagnitude bounds every number and intermediate result so products of
// two in-range values cannot overflow.
const maxMagnitude = 1_000_000_000

var errTooBig = errors.New("The result is too big.")

func inRange(v int64) bool { return v >= -maxMagnitude && v <= maxMagnitude }

type term struct {
	value int
	desc  string
	op    string
}

// Roller evaluates dice formulas like 2d20+1d6-2.
type Roller struct {
	// Intn returns a number in [0, n).
	Intn func(n int) int
}

func rollDefinition() *cmd.Definition {
	return &cmd.Definition{
		Name:        "roll",
		Aliases:     []string{"dice"},
		Description: "Roll dice like 2d20+1d6-2",
		Usage:       "<formula>",
		Executor:    &Roller{Intn: rand.Intn},
	}
}

func (r *Roller) Execute(_ context.Context, inv *cmd.Invocation) error {
	formula, err := inv.Args.JoinArguments(0, "")
	if err != nil {
		inv.Sender.SendMessage(usage(inv, "<formula>"))
		return nil
	}
	total, pretty, err := r.Eval(formula)
	if err != nil {
		inv.Sender.SendMessage(err.Error())
		return nil
	}
	inv.Sender.SendMessage(fmt.Sprintf("🎲 %s = %s = %d", formula, pretty, total))
	return nil
}

// Complete suggests a few formulas while the first token is typed.
func (r *Roller) Complete(_ context.Context, inv *cmd.Invocation) []string {
	if inv.Args.Size() != 1 {
		return nil
	}
	prefix, _ := inv.Args.Peek()
	var out []string
	for _, s := range []string{"1d20", "2d6", "1d100", "4d6-1d4"} {
		if strings.HasPrefix(s, strings.ToLower(prefix)) {
			out = append(out, s)
		}
	}
	return out
}

// Eval evaluates formula. Multiplication and division bind tighter than
// addition and subtraction; division truncates.
func (r *Roller) Eval(formula string) (int, string, error) {
	formula = strings.ReplaceAll(formula, " ", "")
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 {
		return 0, "", errors.New("Can't parse your formula. Try something like 2d6+1d4*2-3")
	}

	var terms []term
	currentOp := "+"
	for _, token := range tokens {
		if validOps[token] {
			currentOp = token
			continue
		}
		val, desc, err := r.evaluateToken(token)
		if err != nil {
			return 0, "", fmt.Errorf("Failed to evaluate %s: %w", token, err)
		}
		terms = append(terms, term{value: val, desc: desc, op: currentOp})
	}

	var merged []term
	for _, t := range terms {
		if t.op != "*" && t.op != "/" {
			merged = append(merged, t)
			continue
		}
		if len(merged) == 0 {
			return 0, "", errors.New("Can't multiply or divide by nothing.")
		}
		prev := merged[len(merged)-1]
		merged = merged[:len(merged)-1]

		var v int64
		switch t.op {
		case "*":
			v = int64(prev.value) * int64(t.value)
		case "/":
			if t.value == 0 {
				return 0, "", errors.New("Can't divide by zero.")
			}
			v = int64(prev.value) / int64(t.value)
		}
		if !inRange(v) {
			return 0, "", errTooBig
		}
		merged = append(merged, term{
			value: int(v),
			desc:  fmt.Sprintf("%s %s %s", prev.desc, t.op, t.desc),
			op:    prev.op,
		})
	}

	total := 0
	var details []string
	for _, t := range merged {
		if len(details) > 0 {
			details = append(details, fmt.Sprintf(" %s ", t.op))
		}
		details = append(details, t.desc)
		if t.op == "-" {
			total -= t.value
		} else {
			total += t.value
		}
		if !inRange(int64(total)) {
			return 0, "", errTooBig
		}
	}
	return total, strings.Join(details, ""), nil
}

func (r *Roller) evaluateToken(token string) (int, string, error) {
	matches := diceRegex.FindStringSubmatch(token)
	if matches == nil {
		num, err := strconv.Atoi(token)
		if err != nil {
			return 0, "", errors.New("not a number or dice")
		}
		if !inRange(int64(num)) {
			return 0, "", fmt.Errorf("too big. max %d", maxMagnitude)
		}
		return num, strconv.Itoa(num), nil
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", errors.New("invalid dice count")
		}
		count = n
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil || sides < 2 {
		return 0, "", errors.New("invalid dice sides")
	}
	if count > 100 || sides > 1000 {
		return 0, "", errors.New("too big. max 100 dice, 1000 sides")
	}

	var sum int
	rolls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n := r.Intn(sides) + 1
		sum += n
		rolls = append(rolls, strconv.Itoa(n))
	}
	return sum, fmt.Sprintf("%s [%s]", token, strings.Join(rolls, ", ")), nil
}
