/*
Package pack reads containers in the Pack format, a big-endian,
length-prefixed list of named, typed and repeated records. Readers are
zero-copy: names and byte payloads are views into the caller's buffer, and
every step through the buffer is bounds-checked so that malformed input is
reported as an error rather than read past.

Data Structure Documentation

Container

A container is a record count followed by that many records. All integers
are big-endian.

    Container layout:
    +------------------------+----------+-----+----------+
    | record count (4 bytes) | record 1 | ... | record n |
    +------------------------+----------+-----+----------+

Record

A record declares a name, a type tag and a number of values, all of which
share the type. The name length includes a NUL terminator that is not
stored in the container.

    Record layout:
    +-----------------------+-----------------------+----------------+-----------------------+---------+-----+
    | name length (4 bytes) | name (length-1 bytes) | type (4 bytes) | value count (4 bytes) | value 1 | ... |
    +-----------------------+-----------------------+----------------+-----------------------+---------+-----+

    Type tags:
    +-----+---------+------------------------------------------------------+
    | tag | type    | value encoding                                       |
    +-----+---------+------------------------------------------------------+
    |  0  | Int     | 4 bytes                                              |
    |  1  | Data    | length (4 bytes), length bytes                       |
    |  2  | String  | length (4 bytes), length bytes, last byte is the NUL |
    |  3  | WString | same as String                                       |
    |  4  | Int64   | 8 bytes                                              |
    +-----+---------+------------------------------------------------------+

A String or WString with a declared length of 0 is empty and occupies only
its length prefix.

Names are not unique. Lookups resolve to the first record with a matching
name; use Records to visit every occurrence.
*/
package pack
