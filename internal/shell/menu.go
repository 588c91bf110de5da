package shell

import (
	"fmt"
	"strings"

	"github.com/jask/shoplist/internal/textlist"
)

// action runs one menu option and reports whether it changed the list.
type action func(s *Shell) (bool, error)

type option struct {
	label   string
	mutates bool
	run     action
}

// menu is indexed by option number minus one. Options 1-10 keep their
// historical numbering; later additions are appended after Exit.
var menu = []option{
	{"Remove an item", true, (*Shell).removeItem},
	{"Add an item", true, (*Shell).addItem},
	{"Set an item at position", true, (*Shell).setItem},
	{"Get the size of shopping list", false, (*Shell).size},
	{"Get item at position", false, (*Shell).getItem},
	{"Display shopping list", false, (*Shell).showList},
	{"Remove an item at position", true, (*Shell).removeAt},
	{"Last position of a value", false, (*Shell).lastPosition},
	{"Get position of a value", false, (*Shell).position},
	{"Exit", false, (*Shell).exit},
	{"Insert an item at position", true, (*Shell).insertItem},
	{"Count occurrences of a value", false, (*Shell).count},
	{"Remove all occurrences of a value", true, (*Shell).removeAll},
	{"Add several items (comma separated)", true, (*Shell).addMany},
	{"Clear shopping list", true, (*Shell).clearList},
	{"Undo last change", false, (*Shell).undo},
}

func lookup(choice int) (option, bool) {
	if choice < 1 || choice > len(menu) {
		return option{}, false
	}
	return menu[choice-1], true
}

func (s *Shell) printMenu() {
	s.println(s.th.title, "Menu:")
	for i, opt := range menu {
		key := s.th.menuKey.Render(fmt.Sprintf("%2d.", i+1))
		fmt.Fprintln(s.out, key+" "+s.th.item.Render(opt.label))
	}
}

func (s *Shell) removeItem() (bool, error) {
	item, err := s.readLine("Please enter the item you want to remove:")
	if err != nil {
		return false, err
	}
	if !s.list.Remove(item) {
		s.notFound(item)
		return false, nil
	}
	s.printf(s.th.success, "First instance of '%s' removed from the list.", item)
	return true, nil
}

func (s *Shell) addItem() (bool, error) {
	item, err := s.readLine("Enter an item you want to add:")
	if err != nil {
		return false, err
	}
	s.list.Add(item)
	s.printf(s.th.success, "'%s' added to the list.", item)
	return true, nil
}

func (s *Shell) setItem() (bool, error) {
	item, err := s.readLine("Enter an item to set:")
	if err != nil {
		return false, err
	}
	pos, err := s.readNumber("Enter a position to set the item:", 1)
	if err != nil {
		return false, err
	}
	prev, err := s.list.Set(pos-1, item)
	if err != nil {
		return false, err
	}
	s.printf(s.th.success, "Replaced '%s' with '%s' at position %d.", prev, item, pos)
	return true, nil
}

func (s *Shell) size() (bool, error) {
	n := s.list.Len()
	s.printf(s.th.item, "Size of your shopping list: %d %s.", n, plural(n, "item", "items"))
	return false, nil
}

func (s *Shell) getItem() (bool, error) {
	pos, err := s.readNumber("Enter the position to get the item:", 1)
	if err != nil {
		return false, err
	}
	item, err := s.list.Get(pos - 1)
	if err != nil {
		return false, err
	}
	s.printf(s.th.item, "Item at position %d: %s", pos, item)
	return false, nil
}

func (s *Shell) showList() (bool, error) {
	s.display()
	return false, nil
}

func (s *Shell) removeAt() (bool, error) {
	pos, err := s.readNumber("Enter the position you want to delete:", 1)
	if err != nil {
		return false, err
	}
	item, err := s.list.RemoveAt(pos - 1)
	if err != nil {
		return false, err
	}
	s.printf(s.th.success, "Removed '%s' from position %d.", item, pos)
	return true, nil
}

func (s *Shell) lastPosition() (bool, error) {
	item, err := s.readLine("Enter the item to find the last position of:")
	if err != nil {
		return false, err
	}
	i := s.list.LastIndexOf(item)
	if i == textlist.NotFound {
		s.notFound(item)
		return false, nil
	}
	s.printf(s.th.item, "Last position of '%s': %d", item, i+1)
	return false, nil
}

func (s *Shell) position() (bool, error) {
	item, err := s.readLine("Enter the item to find the position of:")
	if err != nil {
		return false, err
	}
	i := s.list.IndexOf(item)
	if i == textlist.NotFound {
		s.notFound(item)
		return false, nil
	}
	s.printf(s.th.item, "Position of '%s': %d", item, i+1)
	return false, nil
}

func (s *Shell) exit() (bool, error) {
	return false, errExit
}

func (s *Shell) insertItem() (bool, error) {
	item, err := s.readLine("Enter an item to insert:")
	if err != nil {
		return false, err
	}
	pos, err := s.readNumber("Enter the position to insert the item at:", 1)
	if err != nil {
		return false, err
	}
	if err := s.list.Insert(pos-1, item); err != nil {
		return false, err
	}
	s.printf(s.th.success, "'%s' inserted at position %d.", item, pos)
	return true, nil
}

func (s *Shell) count() (bool, error) {
	item, err := s.readLine("Enter the item to count:")
	if err != nil {
		return false, err
	}
	ignoreCase := s.cfg.Search.IgnoreCase
	n := s.list.Count(item, ignoreCase)
	suffix := ""
	if ignoreCase {
		suffix = " (ignoring case)"
	}
	s.printf(s.th.item, "'%s' appears %d %s%s.", item, n, plural(n, "time", "times"), suffix)
	return false, nil
}

func (s *Shell) removeAll() (bool, error) {
	item, err := s.readLine("Enter the item to remove every instance of:")
	if err != nil {
		return false, err
	}
	if !s.list.RemoveAll(item) {
		s.notFound(item)
		return false, nil
	}
	s.printf(s.th.success, "All instances of '%s' removed from the list.", item)
	return true, nil
}

func (s *Shell) addMany() (bool, error) {
	line, err := s.readLine("Enter items separated by commas:")
	if err != nil {
		return false, err
	}
	var items []string
	for _, part := range strings.Split(line, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if !s.list.AddAll(items) {
		s.println(s.th.warn, "No items to add.")
		return false, nil
	}
	s.printf(s.th.success, "Added %d %s.", len(items), plural(len(items), "item", "items"))
	return true, nil
}

func (s *Shell) clearList() (bool, error) {
	if s.list.IsEmpty() {
		s.println(s.th.muted, "Your shopping list is already empty.")
		return false, nil
	}
	s.list.Clear()
	s.println(s.th.success, "Shopping list cleared.")
	return true, nil
}

func (s *Shell) undo() (bool, error) {
	if s.prev == nil {
		s.println(s.th.muted, "Nothing to undo.")
		return false, nil
	}
	s.list, s.prev = s.prev, nil
	s.println(s.th.success, "Last change undone.")
	return true, nil
}
