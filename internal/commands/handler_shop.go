package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nightgrid/neonmud/internal/game"
)

func (i *Interpreter) shop(p *game.Player) (string, error) {
	if !i.world.VendorPresent(p.CurrentRoom) {
		return "", NewUserError("No shop here. Try a bar or vendor stall.")
	}
	catalog := i.world.ShopCatalog(p.CurrentRoom)
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for idx, name := range names {
		lines[idx] = fmt.Sprintf("%s (%d cr)", name, catalog[name])
	}
	return fmt.Sprintf("For sale: %s. You have %d credits. Use 'buy <item>'.",
		strings.Join(lines, ", "), p.Credits), nil
}

func (i *Interpreter) buy(p *game.Player, item string) (string, error) {
	if item == "" {
		return "", NewUserError("Buy what? Try 'shop' first.")
	}
	if !i.world.VendorPresent(p.CurrentRoom) {
		return "", NewUserError("No one's selling here. Try a bar or the market.")
	}

	catalog := i.world.ShopCatalog(p.CurrentRoom)
	proper, price := "", 0
	for name, cost := range catalog {
		if strings.EqualFold(name, item) {
			proper, price = name, cost
			break
		}
	}
	if proper == "" {
		return "", NewUserError("They don't sell that here. Try 'shop'.")
	}
	if p.Credits < price {
		return "", Userf("You need %d credits to buy that.", price)
	}

	p.Credits -= price
	p.Inventory = append(p.Inventory, proper)
	return fmt.Sprintf("You buy a %s for %d credits.", proper, price), nil
}

func (i *Interpreter) credits(p *game.Player) (string, error) {
	return fmt.Sprintf("You have %d credits.", p.Credits), nil
}
