package cmd

import (
	"fmt"

	"github.com/go-props/props/pkg/errors"
	"github.com/go-props/props/pkg/property"
	"github.com/go-props/props/pkg/sheetdef"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a sheet definition file",
		Long: `Load a sheet definition (YAML or TOML), validate it, and print a
summary of the panel it describes. Exits non-zero when the file cannot be
read, decoded, or describes an invalid panel.`,
		Usage: "props validate <file>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate takes exactly one definition file")
	}

	def, err := sheetdef.Load(args[0])
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			errors.Report(e)
		}
		return err
	}

	sheet, err := def.Build(sheetdef.BuildOptions{})
	if err != nil {
		return err
	}

	title := def.Title
	if title == "" {
		title = args[0]
	}
	fmt.Printf("%s: %d properties\n\n", title, sheet.Len())
	fmt.Printf("  %-3s %-20s %-10s %-8s %s\n", "ID", "NAME", "WIDGET", "TYPE", "DETAIL")
	for _, p := range sheet.Items() {
		fmt.Printf("  %-3d %-20s %-10s %-8s %s\n",
			p.ID(), p.Name(), p.WidgetType(), p.ValueType(), detail(p))
	}
	return nil
}

func detail(p property.Property) string {
	switch p.ValueType() {
	case property.ValueTypeAction:
		if len(p.Options()) > 0 {
			return fmt.Sprintf("text=%q", p.Options()[0])
		}
		checked, _ := property.ActionChecked(p)
		return fmt.Sprintf("checked=%v", checked)
	case property.ValueTypeBool:
		v, _ := property.BoolValue(p)
		return fmt.Sprintf("default=%v", v)
	case property.ValueTypeF32:
		n, _ := property.AsFloat32(p)
		return fmt.Sprintf("range=[%v, %v] step=%v default=%v",
			n.Range().Min, n.Range().Max, n.Step(), n.Default())
	case property.ValueTypeF64:
		n, _ := property.AsFloat64(p)
		return fmt.Sprintf("range=[%v, %v] step=%v default=%v",
			n.Range().Min, n.Range().Max, n.Step(), n.Default())
	case property.ValueTypeI32:
		n, _ := property.AsInt32(p)
		if opts := p.Options(); len(opts) > 0 {
			return fmt.Sprintf("options=%v default=%d", opts, n.Default())
		}
		return fmt.Sprintf("range=[%d, %d] step=%d default=%d",
			n.Range().Min, n.Range().Max, n.Step(), n.Default())
	case property.ValueTypeI64:
		n, _ := property.AsInt64(p)
		if opts := p.Options(); len(opts) > 0 {
			return fmt.Sprintf("options=%v default=%d", opts, n.Default())
		}
		return fmt.Sprintf("range=[%d, %d] step=%d default=%d",
			n.Range().Min, n.Range().Max, n.Step(), n.Default())
	case property.ValueTypeString:
		str, _ := property.AsString(p)
		return fmt.Sprintf("max_length=%d default=%q", str.MaxLength(), str.Default())
	default:
		return ""
	}
}
