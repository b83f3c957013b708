package vfs

const readme = `Welcome to the lab!

This is a sandboxed shell. Everything you create lives in memory and stays
inside your home directory.

Try:
  ls              list files
  cd examples     enter the examples directory
  cat hello.c     print a file
  help            show the available commands
`

const helloSh = `#!/bin/bash
echo "Hello, World!"
`

const testPy = `def greet(name):
    return f"Hello, {name}!"

print(greet("World"))
`

const helloC = `#include <stdio.h>

int main() {
    printf("Hello, World!\n");
    return 0;
}
`

// seedTree returns the starter tree every new lab session begins with.
func seedTree() *Directory {
	examples := NewDirectory()
	examples.put("hello.sh", &File{Content: helloSh})
	examples.put("test.py", &File{Content: testPy})
	examples.put("hello.c", &File{Content: helloC})

	workspace := NewDirectory()
	workspace.put(".gitkeep", &File{})

	root := NewDirectory()
	root.put("readme.txt", &File{Content: readme})
	root.put("examples", examples)
	root.put("workspace", workspace)
	return root
}
