package interpreter

// Usage is printed verbatim for every malformed command after the first line.
const Usage = "Invalid command passed.\n" +
	"          Please use one of the following commands: \n" +
	"          PLACE X,Y,(NORTH|SOUTH|EAST|WEST)\n" +
	"          MOVE\n" +
	"          LEFT\n" +
	"          RIGHT"
