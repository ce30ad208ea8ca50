package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) record(name, arg string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
}
func (f *fakeExec) Register(ctx context.Context) error { f.record("register", ""); return nil }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error { f.record("users", ""); return nil }
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.record("search", term)
	return nil
}
func (f *fakeExec) ShowUser(ctx context.Context, id string) error { f.record("user", id); return nil }
func (f *fakeExec) Photos(ctx context.Context, id string) error   { f.record("photos", id); return nil }
func (f *fakeExec) CommentsBy(ctx context.Context, id string) error {
	f.record("comments", id)
	return nil
}
func (f *fakeExec) AddComment(ctx context.Context, id string) error {
	f.record("comment", id)
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, path string) error {
	f.record("upload", path)
	return nil
}
func (f *fakeExec) DeletePhoto(ctx context.Context, id string) error {
	f.record("delete", id)
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error { f.record("passwd", ""); return nil }
func (f *fakeExec) EditProfile(ctx context.Context) error    { f.record("profile", ""); return nil }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"users",
		"search alice smith",
		"user u1",
		"photos u1",
		"comment p7",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "users", "search", "user", "photos", "comment"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	for i, c := range exec.calls {
		switch c {
		case "search":
			if exec.args[i] != "alice smith" {
				t.Fatalf("search term: got %q", exec.args[i])
			}
		case "user", "photos":
			if exec.args[i] != "u1" {
				t.Fatalf("%s arg: got %q", c, exec.args[i])
			}
		case "comment":
			if exec.args[i] != "p7" {
				t.Fatalf("comment arg: got %q", exec.args[i])
			}
		}
	}
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("users\nphotos u1\ndelete p1\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls while logged out: %v", exec.calls)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("user\ndelete\nupload\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BarePhotosMeansOwnCollection(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("photos\ncomments\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 || exec.calls[0] != "photos" || exec.calls[1] != "comments" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if exec.args[0] != "" || exec.args[1] != "" {
		t.Fatalf("bare commands must pass an empty id: %v", exec.args)
	}
}
